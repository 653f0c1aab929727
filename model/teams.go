package model

import (
	"fmt"
	"strings"
)

// Team is one of the closed set of NFL teams a season schedule can reference.
// The canonical name (e.g. "Chiefs") is what picks and schedules store; the
// rest of the fields are display metadata only and never used for rule
// evaluation.
type Team struct {
	name       string
	city       string
	fullName   string
	conference string
	division   string
	colors     [2]string
	logo       string
}

func (t *Team) String() string {
	return t.name
}

func (t *Team) Friendly() string {
	if t.fullName == "" {
		return t.name
	}
	return t.fullName
}

func (t *Team) City() string       { return t.city }
func (t *Team) Conference() string { return t.conference }
func (t *Team) Division() string   { return t.division }
func (t *Team) LogoURL() string    { return t.logo }

func (t *Team) Colors() (primary, secondary string) {
	return t.colors[0], t.colors[1]
}

func (t *Team) Equals(o *Team) bool {
	if o == nil {
		return false
	}
	if t == o {
		return true
	}
	return t.name == o.name
}

const logoBase = "https://a.espncdn.com/i/teamlogos/nfl/500"

var (
	// NFC
	TEAM_49ERS      *Team = &Team{name: "49ers", city: "San Francisco", fullName: "San Francisco 49ers", conference: "NFC", division: "West", colors: [2]string{"#AA0000", "#B3995D"}, logo: logoBase + "/sf.png"}
	TEAM_BEARS      *Team = &Team{name: "Bears", city: "Chicago", fullName: "Chicago Bears", conference: "NFC", division: "North", colors: [2]string{"#0B162A", "#C83803"}, logo: logoBase + "/chi.png"}
	TEAM_BUCCANEERS *Team = &Team{name: "Buccaneers", city: "Tampa Bay", fullName: "Tampa Bay Buccaneers", conference: "NFC", division: "South", colors: [2]string{"#D50A0A", "#FF7900"}, logo: logoBase + "/tb.png"}
	TEAM_CARDINALS  *Team = &Team{name: "Cardinals", city: "Arizona", fullName: "Arizona Cardinals", conference: "NFC", division: "West", colors: [2]string{"#97233F", "#000000"}, logo: logoBase + "/ari.png"}
	TEAM_COMMANDERS *Team = &Team{name: "Commanders", city: "Washington", fullName: "Washington Commanders", conference: "NFC", division: "East", colors: [2]string{"#5A1414", "#FFB612"}, logo: logoBase + "/wsh.png"}
	TEAM_COWBOYS    *Team = &Team{name: "Cowboys", city: "Dallas", fullName: "Dallas Cowboys", conference: "NFC", division: "East", colors: [2]string{"#003594", "#041E42"}, logo: logoBase + "/dal.png"}
	TEAM_EAGLES     *Team = &Team{name: "Eagles", city: "Philadelphia", fullName: "Philadelphia Eagles", conference: "NFC", division: "East", colors: [2]string{"#004C54", "#A5ACAF"}, logo: logoBase + "/phi.png"}
	TEAM_FALCONS    *Team = &Team{name: "Falcons", city: "Atlanta", fullName: "Atlanta Falcons", conference: "NFC", division: "South", colors: [2]string{"#A71930", "#000000"}, logo: logoBase + "/atl.png"}
	TEAM_GIANTS     *Team = &Team{name: "Giants", city: "New York", fullName: "New York Giants", conference: "NFC", division: "East", colors: [2]string{"#0B2265", "#A71930"}, logo: logoBase + "/nyg.png"}
	TEAM_LIONS      *Team = &Team{name: "Lions", city: "Detroit", fullName: "Detroit Lions", conference: "NFC", division: "North", colors: [2]string{"#0076B6", "#B0B7BC"}, logo: logoBase + "/det.png"}
	TEAM_PACKERS    *Team = &Team{name: "Packers", city: "Green Bay", fullName: "Green Bay Packers", conference: "NFC", division: "North", colors: [2]string{"#203731", "#FFB612"}, logo: logoBase + "/gb.png"}
	TEAM_PANTHERS   *Team = &Team{name: "Panthers", city: "Carolina", fullName: "Carolina Panthers", conference: "NFC", division: "South", colors: [2]string{"#0085CA", "#101820"}, logo: logoBase + "/car.png"}
	TEAM_RAMS       *Team = &Team{name: "Rams", city: "Los Angeles", fullName: "Los Angeles Rams", conference: "NFC", division: "West", colors: [2]string{"#003594", "#FFA300"}, logo: logoBase + "/lar.png"}
	TEAM_SAINTS     *Team = &Team{name: "Saints", city: "New Orleans", fullName: "New Orleans Saints", conference: "NFC", division: "South", colors: [2]string{"#D3BC8D", "#101820"}, logo: logoBase + "/no.png"}
	TEAM_SEAHAWKS   *Team = &Team{name: "Seahawks", city: "Seattle", fullName: "Seattle Seahawks", conference: "NFC", division: "West", colors: [2]string{"#002244", "#69BE28"}, logo: logoBase + "/sea.png"}
	TEAM_VIKINGS    *Team = &Team{name: "Vikings", city: "Minnesota", fullName: "Minnesota Vikings", conference: "NFC", division: "North", colors: [2]string{"#4F2683", "#FFC62F"}, logo: logoBase + "/min.png"}

	// AFC
	TEAM_BENGALS  *Team = &Team{name: "Bengals", city: "Cincinnati", fullName: "Cincinnati Bengals", conference: "AFC", division: "North", colors: [2]string{"#FB4F14", "#000000"}, logo: logoBase + "/cin.png"}
	TEAM_BILLS    *Team = &Team{name: "Bills", city: "Buffalo", fullName: "Buffalo Bills", conference: "AFC", division: "East", colors: [2]string{"#00338D", "#C60C30"}, logo: logoBase + "/buf.png"}
	TEAM_BRONCOS  *Team = &Team{name: "Broncos", city: "Denver", fullName: "Denver Broncos", conference: "AFC", division: "West", colors: [2]string{"#FB4F14", "#002244"}, logo: logoBase + "/den.png"}
	TEAM_BROWNS   *Team = &Team{name: "Browns", city: "Cleveland", fullName: "Cleveland Browns", conference: "AFC", division: "North", colors: [2]string{"#311D00", "#FF3C00"}, logo: logoBase + "/cle.png"}
	TEAM_CHARGERS *Team = &Team{name: "Chargers", city: "Los Angeles", fullName: "Los Angeles Chargers", conference: "AFC", division: "West", colors: [2]string{"#0080C6", "#FFC20E"}, logo: logoBase + "/lac.png"}
	TEAM_CHIEFS   *Team = &Team{name: "Chiefs", city: "Kansas City", fullName: "Kansas City Chiefs", conference: "AFC", division: "West", colors: [2]string{"#E31837", "#FFB81C"}, logo: logoBase + "/kc.png"}
	TEAM_COLTS    *Team = &Team{name: "Colts", city: "Indianapolis", fullName: "Indianapolis Colts", conference: "AFC", division: "South", colors: [2]string{"#002C5F", "#A2AAAD"}, logo: logoBase + "/ind.png"}
	TEAM_DOLPHINS *Team = &Team{name: "Dolphins", city: "Miami", fullName: "Miami Dolphins", conference: "AFC", division: "East", colors: [2]string{"#008E97", "#FC4C02"}, logo: logoBase + "/mia.png"}
	TEAM_JAGUARS  *Team = &Team{name: "Jaguars", city: "Jacksonville", fullName: "Jacksonville Jaguars", conference: "AFC", division: "South", colors: [2]string{"#006778", "#9F792C"}, logo: logoBase + "/jax.png"}
	TEAM_JETS     *Team = &Team{name: "Jets", city: "New York", fullName: "New York Jets", conference: "AFC", division: "East", colors: [2]string{"#125740", "#000000"}, logo: logoBase + "/nyj.png"}
	TEAM_PATRIOTS *Team = &Team{name: "Patriots", city: "New England", fullName: "New England Patriots", conference: "AFC", division: "East", colors: [2]string{"#002244", "#C60C30"}, logo: logoBase + "/ne.png"}
	TEAM_RAIDERS  *Team = &Team{name: "Raiders", city: "Las Vegas", fullName: "Las Vegas Raiders", conference: "AFC", division: "West", colors: [2]string{"#000000", "#A5ACAF"}, logo: logoBase + "/lv.png"}
	TEAM_RAVENS   *Team = &Team{name: "Ravens", city: "Baltimore", fullName: "Baltimore Ravens", conference: "AFC", division: "North", colors: [2]string{"#241773", "#000000"}, logo: logoBase + "/bal.png"}
	TEAM_STEELERS *Team = &Team{name: "Steelers", city: "Pittsburgh", fullName: "Pittsburgh Steelers", conference: "AFC", division: "North", colors: [2]string{"#FFB612", "#101820"}, logo: logoBase + "/pit.png"}
	TEAM_TEXANS   *Team = &Team{name: "Texans", city: "Houston", fullName: "Houston Texans", conference: "AFC", division: "South", colors: [2]string{"#03202F", "#A71930"}, logo: logoBase + "/hou.png"}
	TEAM_TITANS   *Team = &Team{name: "Titans", city: "Tennessee", fullName: "Tennessee Titans", conference: "AFC", division: "South", colors: [2]string{"#0C2340", "#4B92DB"}, logo: logoBase + "/ten.png"}

	allTeams []*Team          = buildAllTeams()
	teamMap  map[string]*Team = buildTeamMap()
)

// ParseTeam resolves a team name to the league roster. Unlike a free-form
// string, a nil result tells the caller the name is not a real team, which is
// what pick validation needs.
func ParseTeam(name string) *Team {
	return teamMap[strings.ToLower(strings.TrimSpace(name))]
}

// AllTeams returns the full league roster in a stable order.
func AllTeams() []*Team {
	out := make([]*Team, len(allTeams))
	copy(out, allTeams)
	return out
}

func buildAllTeams() []*Team {
	return []*Team{
		// NFC
		TEAM_49ERS, TEAM_BEARS, TEAM_BUCCANEERS, TEAM_CARDINALS, TEAM_COMMANDERS,
		TEAM_COWBOYS, TEAM_EAGLES, TEAM_FALCONS, TEAM_GIANTS, TEAM_LIONS,
		TEAM_PACKERS, TEAM_PANTHERS, TEAM_RAMS, TEAM_SAINTS, TEAM_SEAHAWKS, TEAM_VIKINGS,
		// AFC
		TEAM_BENGALS, TEAM_BILLS, TEAM_BRONCOS, TEAM_BROWNS, TEAM_CHARGERS,
		TEAM_CHIEFS, TEAM_COLTS, TEAM_DOLPHINS, TEAM_JAGUARS, TEAM_JETS,
		TEAM_PATRIOTS, TEAM_RAIDERS, TEAM_RAVENS, TEAM_STEELERS, TEAM_TEXANS, TEAM_TITANS,
	}
}

func buildTeamMap() map[string]*Team {
	m := make(map[string]*Team)
	for _, t := range buildAllTeams() {
		m[strings.ToLower(t.name)] = t
		if t.fullName != "" {
			m[strings.ToLower(t.fullName)] = t
		}
	}
	return m
}

// GameKey builds the canonical key a recorded result is stored under.
func GameKey(away, home *Team) string {
	return fmt.Sprintf("%s @ %s", away, home)
}
