package model

import "time"

// RecordedWinner is one admin-entered game outcome. Last write wins.
type RecordedWinner struct {
	Winner     string    `json:"winner"`
	RecordedAt time.Time `json:"recordedAt"`
}

// WeekResult holds the recorded outcomes for one week, keyed by the
// "away @ home" game key.
type WeekResult struct {
	Week    int
	Winners map[string]RecordedWinner
}

// WinnerFor returns the recorded winner for a game key, or "" if the game has
// no result yet.
func (r *WeekResult) WinnerFor(gameKey string) string {
	if r == nil {
		return ""
	}
	return r.Winners[gameKey].Winner
}

// GameOutcome summarizes elimination processing for one game.
type GameOutcome struct {
	GameKey    string
	Winner     string
	Loser      string
	Eliminated []string
}

// EliminationSummary is the result of processing one week's eliminations.
type EliminationSummary struct {
	Week       int
	Eliminated int
	Games      []GameOutcome
}
