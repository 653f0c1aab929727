package schedule

import (
	"strings"
	"testing"

	"github.com/albertisntreal/showdown-survivor/model"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("error loading embedded schedule: %v", err)
	}

	weeks := s.Weeks()
	if len(weeks) == 0 {
		t.Fatalf("embedded schedule has no weeks")
	}
	if weeks[0] != 1 {
		t.Errorf("expected first week to be 1, got %d", weeks[0])
	}
	if got := len(s.GamesInWeek(1)); got != 16 {
		t.Errorf("expected a full 16-game opening week, got %d", got)
	}
	if !s.InSeason(model.TEAM_CHIEFS) {
		t.Errorf("expected Chiefs in the season roster")
	}
}

func TestParseJSONRejectsUnknownTeam(t *testing.T) {
	raw := `{
		"teams": ["Chiefs", "Oilers"],
		"weeks": {"1": [{"home": "Chiefs", "away": "Ravens", "kickoff": "2025-09-07T17:00:00Z"}]}
	}`
	if _, err := parseJSON([]byte(raw)); err == nil {
		t.Errorf("expected error for unknown roster team")
	}
}

func TestParseJSONRejectsBadKickoff(t *testing.T) {
	raw := `{
		"teams": ["Chiefs", "Ravens"],
		"weeks": {"1": [{"home": "Chiefs", "away": "Ravens", "kickoff": "Sunday at 1"}]}
	}`
	if _, err := parseJSON([]byte(raw)); err == nil {
		t.Errorf("expected error for unparseable kickoff")
	}
}

const sampleCSV = `week,game_time,teamPick,teamOpponent,status
1,09/07/2025 1:00 PM,Chiefs,Ravens,Upcoming
1,09/07/2025 1:00 PM,Ravens,Chiefs,Upcoming
1,09/07/2025 4:25 PM,Bills,Jets,Upcoming
1,09/07/2025 4:25 PM,Packers,Lions,Final
2,09/14/2025 1:00 PM,Cowboys,Giants,Upcoming
`

func TestParseCSV(t *testing.T) {
	s, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("error parsing csv: %v", err)
	}

	weeks := s.Weeks()
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}

	// The mirrored Ravens/Chiefs row and the Final row are both dropped.
	if got := len(s.GamesInWeek(1)); got != 2 {
		t.Errorf("expected 2 games in week 1, got %d", got)
	}
	if s.IsTeamPlaying(1, model.TEAM_PACKERS) {
		t.Errorf("non-upcoming games should be skipped")
	}

	g, ok := s.GameForTeam(1, model.TEAM_CHIEFS)
	if !ok {
		t.Fatalf("expected a Chiefs game in week 1")
	}
	if g.Kickoff.Hour() != 13 {
		t.Errorf("expected 1 PM kickoff, got %v", g.Kickoff)
	}
}

func TestParseCSVUnknownTeam(t *testing.T) {
	csv := "week,game_time,teamPick,teamOpponent,status\n1,09/07/2025 1:00 PM,Chiefs,Oilers,Upcoming\n"
	if _, err := ParseCSV(strings.NewReader(csv)); err == nil {
		t.Errorf("expected error for unknown team")
	}
}

func TestParseCSVMissingColumns(t *testing.T) {
	csv := "week,teamPick,teamOpponent\n1,Chiefs,Ravens\n"
	if _, err := ParseCSV(strings.NewReader(csv)); err == nil {
		t.Errorf("expected error for missing columns")
	}
}
