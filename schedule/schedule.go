// Package schedule holds the season schedule and answers the week questions
// the rest of the app asks: what weeks exist, who plays when, which week is
// current, and whether a week is locked for picks.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
)

// Game is one scheduled matchup. Kickoff is an absolute instant in UTC.
type Game struct {
	Home    *model.Team
	Away    *model.Team
	Kickoff time.Time
}

// Key is the canonical identifier results are recorded under.
func (g Game) Key() string {
	return model.GameKey(g.Away, g.Home)
}

// Schedule is the season's games grouped by week. It is immutable after New.
type Schedule struct {
	weeks map[int][]Game
	order []int
	teams map[string]*model.Team
}

// New validates and indexes a season's games. The roster is the closed set of
// teams picks are validated against; teams appearing in games are added to it
// regardless. Weeks must be positive and a team may appear in at most one
// game per week.
func New(roster []*model.Team, weeks map[int][]Game) (*Schedule, error) {
	s := &Schedule{
		weeks: make(map[int][]Game, len(weeks)),
		teams: make(map[string]*model.Team),
	}
	for _, t := range roster {
		if t == nil {
			return nil, fmt.Errorf("roster contains an unknown team")
		}
		s.teams[t.String()] = t
	}

	for week, games := range weeks {
		if week < 1 {
			return nil, fmt.Errorf("invalid week number: %d", week)
		}
		seen := make(map[string]bool)
		for _, g := range games {
			if g.Home == nil || g.Away == nil {
				return nil, fmt.Errorf("week %d has a game with a missing team", week)
			}
			if g.Home.Equals(g.Away) {
				return nil, fmt.Errorf("week %d: %s cannot play itself", week, g.Home)
			}
			for _, t := range []*model.Team{g.Home, g.Away} {
				if seen[t.String()] {
					return nil, fmt.Errorf("week %d: %s appears in more than one game", week, t)
				}
				seen[t.String()] = true
				s.teams[t.String()] = t
			}
		}
		s.weeks[week] = append([]Game(nil), games...)
		s.order = append(s.order, week)
	}
	sort.Ints(s.order)

	return s, nil
}

// Weeks returns the known week numbers in ascending order. Empty input yields
// an empty slice, never an error.
func (s *Schedule) Weeks() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// HasWeek reports whether the week exists in the season.
func (s *Schedule) HasWeek(week int) bool {
	_, ok := s.weeks[week]
	return ok
}

// GamesInWeek returns the games of a week; an unknown week is an empty slice,
// not an error.
func (s *Schedule) GamesInWeek(week int) []Game {
	games := s.weeks[week]
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// GameForTeam returns the game the team plays in the given week, if any.
func (s *Schedule) GameForTeam(week int, team *model.Team) (Game, bool) {
	for _, g := range s.weeks[week] {
		if g.Home.Equals(team) || g.Away.Equals(team) {
			return g, true
		}
	}
	return Game{}, false
}

// IsTeamPlaying reports whether the team has a game in the given week.
func (s *Schedule) IsTeamPlaying(week int, team *model.Team) bool {
	_, ok := s.GameForTeam(week, team)
	return ok
}

// InSeason reports whether the team appears anywhere in the season schedule,
// which is the roster picks are validated against.
func (s *Schedule) InSeason(team *model.Team) bool {
	if team == nil {
		return false
	}
	_, ok := s.teams[team.String()]
	return ok
}

// CurrentWeek picks the active week. An override that names a known week
// wins. Otherwise the current week is the first week whose earliest kickoff
// is still in the future; once every week has started, the last week stays
// current. An override of 0 means no override.
func (s *Schedule) CurrentWeek(now time.Time, override int) int {
	if len(s.order) == 0 {
		return 1
	}
	if override != 0 && s.HasWeek(override) {
		return override
	}
	for _, w := range s.order {
		first, ok := s.firstKickoff(w)
		if !ok {
			continue
		}
		if now.Before(first) {
			return w
		}
	}
	return s.order[len(s.order)-1]
}

// IsWeekLocked reports whether picks for the week are frozen: true from the
// week's first kickoff onward. A week with no games never locks.
func (s *Schedule) IsWeekLocked(week int, now time.Time) bool {
	first, ok := s.firstKickoff(week)
	if !ok {
		return false
	}
	return !now.Before(first)
}

func (s *Schedule) firstKickoff(week int) (time.Time, bool) {
	games := s.weeks[week]
	if len(games) == 0 {
		return time.Time{}, false
	}
	first := games[0].Kickoff
	for _, g := range games[1:] {
		if g.Kickoff.Before(first) {
			first = g.Kickoff
		}
	}
	return first, true
}
