package schedule

import (
	"bufio"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
)

//go:embed data
var seasondata embed.FS

// seasonFile mirrors the {teams, weeks} JSON layout the schedule is
// distributed in.
type seasonFile struct {
	Teams []string              `json:"teams"`
	Weeks map[string][]gameJSON `json:"weeks"`
}

type gameJSON struct {
	Home    string `json:"home"`
	Away    string `json:"away"`
	Kickoff string `json:"kickoff"`
}

// Default loads the season schedule embedded in the binary.
func Default() (*Schedule, error) {
	raw, err := seasondata.ReadFile("data/schedule-2025.json")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded schedule: %w", err)
	}
	return parseJSON(raw)
}

// LoadFile reads a {teams, weeks} JSON schedule from disk.
func LoadFile(path string) (*Schedule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schedule file: %w", err)
	}
	return parseJSON(raw)
}

func parseJSON(raw []byte) (*Schedule, error) {
	var f seasonFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("error parsing schedule json: %w", err)
	}
	if len(f.Weeks) == 0 {
		return nil, fmt.Errorf("schedule has no weeks")
	}

	roster := make([]*model.Team, 0, len(f.Teams))
	for _, name := range f.Teams {
		t := model.ParseTeam(name)
		if t == nil {
			return nil, fmt.Errorf("schedule roster has unknown team: %s", name)
		}
		roster = append(roster, t)
	}

	weeks := make(map[int][]Game, len(f.Weeks))
	for weekStr, games := range f.Weeks {
		week, err := strconv.Atoi(weekStr)
		if err != nil {
			return nil, fmt.Errorf("error parsing week number '%s': %w", weekStr, err)
		}
		for _, g := range games {
			game, err := g.toGame()
			if err != nil {
				return nil, fmt.Errorf("week %d: %w", week, err)
			}
			weeks[week] = append(weeks[week], game)
		}
	}

	return New(roster, weeks)
}

func (g gameJSON) toGame() (Game, error) {
	home := model.ParseTeam(g.Home)
	if home == nil {
		return Game{}, fmt.Errorf("unknown home team: %s", g.Home)
	}
	away := model.ParseTeam(g.Away)
	if away == nil {
		return Game{}, fmt.Errorf("unknown away team: %s", g.Away)
	}
	kickoff, err := time.Parse(time.RFC3339, g.Kickoff)
	if err != nil {
		return Game{}, fmt.Errorf("error parsing kickoff '%s': %w", g.Kickoff, err)
	}
	return Game{Home: home, Away: away, Kickoff: kickoff.UTC()}, nil
}

var usDateTimeRegex = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+(\d{1,2}):(\d{2})\s*(?i:(AM|PM))`)

// ParseCSV reads the week,game_time,teamPick,teamOpponent,status export
// format. Only rows with status "Upcoming" are used, duplicate matchups are
// dropped, and game times are US-format local datetimes.
func ParseCSV(r io.Reader) (*Schedule, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("csv schedule is empty")
	}

	header := strings.Split(scanner.Text(), ",")
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"week", "game_time", "teamPick", "teamOpponent", "status"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv schedule is missing the %s column", required)
		}
	}

	weeks := make(map[int][]Game)
	rosterSet := make(map[string]*model.Team)
	seen := make(map[string]bool)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < len(header) {
			continue
		}

		if strings.TrimSpace(parts[col["status"]]) != "Upcoming" {
			continue
		}

		week, err := strconv.Atoi(strings.TrimSpace(parts[col["week"]]))
		if err != nil || week < 1 {
			continue
		}

		home := model.ParseTeam(parts[col["teamPick"]])
		away := model.ParseTeam(parts[col["teamOpponent"]])
		if home == nil || away == nil {
			return nil, fmt.Errorf("csv row has unknown team: %s", line)
		}

		// One row per matchup regardless of which side exported it.
		a, b := home.String(), away.String()
		if b < a {
			a, b = b, a
		}
		key := fmt.Sprintf("%d:%s vs %s", week, a, b)
		if seen[key] {
			continue
		}
		seen[key] = true

		kickoff, err := parseUSDateTime(strings.TrimSpace(parts[col["game_time"]]))
		if err != nil {
			return nil, fmt.Errorf("error parsing game time on row '%s': %w", line, err)
		}

		weeks[week] = append(weeks[week], Game{Home: home, Away: away, Kickoff: kickoff})
		rosterSet[home.String()] = home
		rosterSet[away.String()] = away
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading csv schedule: %w", err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("csv schedule has no upcoming games")
	}

	roster := make([]*model.Team, 0, len(rosterSet))
	for _, t := range rosterSet {
		roster = append(roster, t)
	}
	return New(roster, weeks)
}

func parseUSDateTime(s string) (time.Time, error) {
	m := usDateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Parse(time.RFC3339, s)
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	switch strings.ToUpper(m[6]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), nil
}
