package model

import (
	"math"
	"time"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func ParseVisibility(v string) Visibility {
	if v == string(VisibilityPrivate) {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

type GameType string

const (
	GameTypeRegular GameType = "regular"
	GameTypeBuyback GameType = "buyback"
)

func ParseGameType(v string) GameType {
	if v == string(GameTypeBuyback) {
		return GameTypeBuyback
	}
	return GameTypeRegular
}

// MaxBuybacks is the per-user cap on re-entries in a buyback pool.
const MaxBuybacks = 2

// Pool is one instance of the survivor contest: its own membership, picks,
// eliminations and buy-back ledger.
type Pool struct {
	ID         string
	Name       string
	CreatorID  string
	EntryFee   float64
	MaxPlayers int
	Visibility Visibility
	JoinKey    string
	GameType   GameType
	// Players is in join order; the creator is always Players[0].
	Players []string
	// Picks maps user ID -> week number -> picked team name.
	Picks      map[string]map[int]string
	Eliminated []string
	Buybacks   map[string]int
	WinnerID   string
	Created    time.Time
}

func (p *Pool) IsMember(userID string) bool {
	for _, id := range p.Players {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Pool) IsEliminated(userID string) bool {
	for _, id := range p.Eliminated {
		if id == userID {
			return true
		}
	}
	return false
}

// PickFor returns the user's pick for the given week, or "" if none.
func (p *Pool) PickFor(userID string, week int) string {
	return p.Picks[userID][week]
}

// HasUsedTeam reports whether the user has already burned the team in any
// week of this pool.
func (p *Pool) HasUsedTeam(userID, team string) bool {
	for _, t := range p.Picks[userID] {
		if t == team {
			return true
		}
	}
	return false
}

// SetPick records the user's pick for a week, overwriting any earlier pick
// for that same week.
func (p *Pool) SetPick(userID string, week int, team string) {
	if p.Picks == nil {
		p.Picks = make(map[string]map[int]string)
	}
	if p.Picks[userID] == nil {
		p.Picks[userID] = make(map[int]string)
	}
	p.Picks[userID][week] = team
}

// Eliminate adds the user to the eliminated set. It reports whether the user
// was newly eliminated, which keeps elimination processing idempotent.
func (p *Pool) Eliminate(userID string) bool {
	if p.IsEliminated(userID) {
		return false
	}
	p.Eliminated = append(p.Eliminated, userID)
	return true
}

// Reinstate removes the user from the eliminated set.
func (p *Pool) Reinstate(userID string) {
	out := p.Eliminated[:0]
	for _, id := range p.Eliminated {
		if id != userID {
			out = append(out, id)
		}
	}
	p.Eliminated = out
}

// BuybackCost is what the Nth buy-back (1-based) costs: the entry fee plus an
// escalating half-fee surcharge.
func (p *Pool) BuybackCost(n int) float64 {
	return round2(p.EntryFee + float64(n)*(p.EntryFee*0.5))
}

// Pot is the prize amount for the pool: entry fees for every member plus all
// buy-back fees paid so far. Pure calculation, safe to call anywhere.
func (p *Pool) Pot() float64 {
	pot := p.EntryFee * float64(len(p.Players))
	for _, n := range p.Buybacks {
		for i := 1; i <= n; i++ {
			pot += p.EntryFee + float64(i)*(p.EntryFee*0.5)
		}
	}
	return round2(pot)
}

// IsUnused reports whether the pool never really got going: at most the
// creator as a member and no picks recorded. Only unused pools may be deleted
// by the admin cleanup tooling.
func (p *Pool) IsUnused() bool {
	return len(p.Players) <= 1 && len(p.Picks) == 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
