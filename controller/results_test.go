package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/testutils"
)

func TestRecordWinnerGuards(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctx := context.Background()

	tests := map[string]struct {
		week    int
		gameKey string
		winner  string
	}{
		"unknown team":        {week: 1, gameKey: "Ravens @ Chiefs", winner: "Mariners"},
		"no such game":        {week: 1, gameKey: "Seahawks @ 49ers", winner: "Seahawks"},
		"wrong week":          {week: 3, gameKey: "Ravens @ Chiefs", winner: "Ravens"},
		"team not in matchup": {week: 1, gameKey: "Ravens @ Chiefs", winner: "Jets"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if err := ctrl.RecordWinner(ctx, tc.week, tc.gameKey, tc.winner); err == nil {
				t.Errorf("expected an error recording %s as winner of %q", tc.winner, tc.gameKey)
			}
		})
	}

	// Nothing was recorded by any of the rejected calls.
	if _, err := ctrl.GetWeekResult(ctx, 1); !errors.Is(err, db.ErrWeekResultNotFound) {
		t.Errorf("expected ErrWeekResultNotFound, got %v", err)
	}
}

func TestRecordWinnersBulk(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctx := context.Background()
	const week = 2

	err := ctrl.RecordWinnersBulk(ctx, week, map[string]string{
		"Chiefs @ Bills": "Bills",
		"Jets @ Ravens":  "", // not entered yet, skipped
	})
	if err != nil {
		t.Fatalf("error recording winners: %v", err)
	}

	res, err := ctrl.GetWeekResult(ctx, week)
	if err != nil {
		t.Fatalf("error loading results: %v", err)
	}
	if len(res.Winners) != 1 {
		t.Fatalf("expected 1 recorded winner, got %d", len(res.Winners))
	}
	if res.WinnerFor("Chiefs @ Bills") != "Bills" {
		t.Errorf("winner - wanted Bills, got %s", res.WinnerFor("Chiefs @ Bills"))
	}

	if err := ctrl.ClearWeekResults(ctx, week); err != nil {
		t.Fatalf("error clearing results: %v", err)
	}
}

func TestProcessEliminations(t *testing.T) {
	ctrl, _, notifier := newTestController(t)
	ctx := context.Background()

	p, err := ctrl.CreatePool(ctx, testutils.Alice.ID, "Elimination Pool", 20, 0, model.VisibilityPublic, "", model.GameTypeRegular)
	if err != nil {
		t.Fatalf("error creating pool: %v", err)
	}
	for _, u := range []string{testutils.Bob.ID, testutils.Carol.ID} {
		if err := ctrl.JoinPool(ctx, p.ID, u, ""); err != nil {
			t.Fatalf("error joining pool: %v", err)
		}
	}
	// Carol backs the Chiefs, bob backs the Ravens.
	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Carol.ID, "Chiefs", 1); err != nil {
		t.Fatalf("error submitting pick: %v", err)
	}
	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Bob.ID, "Ravens", 1); err != nil {
		t.Fatalf("error submitting pick: %v", err)
	}

	// No results recorded for the week yet: zero-effect, not an error.
	summary, err := ctrl.ProcessEliminations(ctx, 1)
	if err != nil {
		t.Fatalf("error processing without results: %v", err)
	}
	if summary.Eliminated != 0 || len(summary.Games) != 0 {
		t.Fatalf("expected a zero-effect summary, got %+v", summary)
	}

	if err := ctrl.RecordWinner(ctx, 1, "Ravens @ Chiefs", "Ravens"); err != nil {
		t.Fatalf("error recording winner: %v", err)
	}

	summary, err = ctrl.ProcessEliminations(ctx, 1)
	if err != nil {
		t.Fatalf("error processing eliminations: %v", err)
	}
	if summary.Eliminated != 1 {
		t.Fatalf("eliminated - wanted 1, got %d", summary.Eliminated)
	}
	if len(summary.Games) != 1 {
		t.Fatalf("expected 1 game in summary, got %d", len(summary.Games))
	}
	g := summary.Games[0]
	if g.Winner != "Ravens" || g.Loser != "Chiefs" {
		t.Errorf("wrong outcome: %+v", g)
	}
	if len(g.Eliminated) != 1 || g.Eliminated[0] != testutils.Carol.ID {
		t.Errorf("expected carol to be eliminated, got %v", g.Eliminated)
	}

	got, err := ctrl.GetPool(ctx, p.ID)
	if err != nil {
		t.Fatalf("error loading pool: %v", err)
	}
	if !got.IsEliminated(testutils.Carol.ID) {
		t.Errorf("carol should be eliminated")
	}
	if got.IsEliminated(testutils.Bob.ID) || got.IsEliminated(testutils.Alice.ID) {
		t.Errorf("only carol should be eliminated, got %v", got.Eliminated)
	}

	// Processing again with no new results changes nothing.
	summary, err = ctrl.ProcessEliminations(ctx, 1)
	if err != nil {
		t.Fatalf("error re-processing eliminations: %v", err)
	}
	if summary.Eliminated != 0 {
		t.Errorf("second run should eliminate nobody, got %d", summary.Eliminated)
	}

	// Carol also got the bad news.
	if !notifier.WaitForMessages(3, 2*time.Second) {
		t.Fatalf("expected 3 notifications, got %d", len(notifier.Messages()))
	}
	found := false
	for _, m := range notifier.Messages() {
		if m.UserID == testutils.Carol.ID && m.Message.Title == "Eliminated" {
			found = true
		}
	}
	if !found {
		t.Errorf("no elimination notification for carol: %v", notifier.Messages())
	}

	// Clearing the week removes the results but does NOT reinstate carol.
	// Corrections happen through buy-backs or admin edits, not automatically.
	if err := ctrl.ClearWeekResults(ctx, 1); err != nil {
		t.Fatalf("error clearing results: %v", err)
	}
	if _, err := ctrl.GetWeekResult(ctx, 1); !errors.Is(err, db.ErrWeekResultNotFound) {
		t.Errorf("expected results to be gone, got %v", err)
	}
	got, err = ctrl.GetPool(ctx, p.ID)
	if err != nil {
		t.Fatalf("error loading pool: %v", err)
	}
	if !got.IsEliminated(testutils.Carol.ID) {
		t.Errorf("clearing results should not reinstate carol")
	}
}
