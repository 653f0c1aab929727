package model

import "testing"

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *Team
	}{
		// Canonical names
		{input: "49ers", expected: TEAM_49ERS},
		{input: "Bears", expected: TEAM_BEARS},
		{input: "Bengals", expected: TEAM_BENGALS},
		{input: "Bills", expected: TEAM_BILLS},
		{input: "Broncos", expected: TEAM_BRONCOS},
		{input: "Browns", expected: TEAM_BROWNS},
		{input: "Buccaneers", expected: TEAM_BUCCANEERS},
		{input: "Cardinals", expected: TEAM_CARDINALS},
		{input: "Chargers", expected: TEAM_CHARGERS},
		{input: "Chiefs", expected: TEAM_CHIEFS},
		{input: "Colts", expected: TEAM_COLTS},
		{input: "Commanders", expected: TEAM_COMMANDERS},
		{input: "Cowboys", expected: TEAM_COWBOYS},
		{input: "Dolphins", expected: TEAM_DOLPHINS},
		{input: "Eagles", expected: TEAM_EAGLES},
		{input: "Falcons", expected: TEAM_FALCONS},
		{input: "Giants", expected: TEAM_GIANTS},
		{input: "Jaguars", expected: TEAM_JAGUARS},
		{input: "Jets", expected: TEAM_JETS},
		{input: "Lions", expected: TEAM_LIONS},
		{input: "Packers", expected: TEAM_PACKERS},
		{input: "Panthers", expected: TEAM_PANTHERS},
		{input: "Patriots", expected: TEAM_PATRIOTS},
		{input: "Raiders", expected: TEAM_RAIDERS},
		{input: "Rams", expected: TEAM_RAMS},
		{input: "Ravens", expected: TEAM_RAVENS},
		{input: "Saints", expected: TEAM_SAINTS},
		{input: "Seahawks", expected: TEAM_SEAHAWKS},
		{input: "Steelers", expected: TEAM_STEELERS},
		{input: "Texans", expected: TEAM_TEXANS},
		{input: "Titans", expected: TEAM_TITANS},
		{input: "Vikings", expected: TEAM_VIKINGS},

		// Case and whitespace
		{input: "chiefs", expected: TEAM_CHIEFS},
		{input: "  Ravens ", expected: TEAM_RAVENS},
		{input: "SEAHAWKS", expected: TEAM_SEAHAWKS},

		// Full names
		{input: "Kansas City Chiefs", expected: TEAM_CHIEFS},
		{input: "san francisco 49ers", expected: TEAM_49ERS},

		// Unknown names resolve to nil
		{input: "Oilers", expected: nil},
		{input: "", expected: nil},
		{input: "Kansas City", expected: nil},
	}

	for _, tc := range tests {
		a := ParseTeam(tc.input)
		if tc.expected == nil {
			if a != nil {
				t.Errorf("input: '%s', expected nil, got '%s'", tc.input, a)
			}
			continue
		}
		if !tc.expected.Equals(a) {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestFriendly(t *testing.T) {
	tests := []struct {
		t    *Team
		want string
	}{
		{t: TEAM_SEAHAWKS, want: "Seattle Seahawks"},
		{t: TEAM_CHIEFS, want: "Kansas City Chiefs"},
	}

	for _, tc := range tests {
		got := tc.t.Friendly()
		if tc.want != got {
			t.Errorf("expected: '%s', got: '%s'", tc.want, got)
		}
	}
}

func TestAllTeamsCount(t *testing.T) {
	if len(AllTeams()) != 32 {
		t.Errorf("expected 32 teams, got %d", len(AllTeams()))
	}
}

func TestGameKey(t *testing.T) {
	got := GameKey(TEAM_RAVENS, TEAM_CHIEFS)
	if got != "Ravens @ Chiefs" {
		t.Errorf("unexpected game key: %s", got)
	}
}
