package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/testutils"
)

func TestCurrentWeekAndOverride(t *testing.T) {
	ctrl, mockClock, _ := newTestController(t)
	ctx := context.Background()

	week, err := ctrl.CurrentWeek(ctx)
	if err != nil {
		t.Fatalf("error resolving current week: %v", err)
	}
	if week != 1 {
		t.Errorf("before first kickoff - wanted week 1, got %d", week)
	}

	// The moment week 1 kicks off it is no longer pickable, week 2 is current.
	mockClock.Set(testutils.Week1Kickoff)
	week, err = ctrl.CurrentWeek(ctx)
	if err != nil {
		t.Fatalf("error resolving current week: %v", err)
	}
	if week != 2 {
		t.Errorf("at first kickoff - wanted week 2, got %d", week)
	}

	if err := ctrl.SetWeekOverride(ctx, 3); err != nil {
		t.Fatalf("error setting override: %v", err)
	}
	week, err = ctrl.CurrentWeek(ctx)
	if err != nil {
		t.Fatalf("error resolving current week: %v", err)
	}
	if week != 3 {
		t.Errorf("with override - wanted week 3, got %d", week)
	}

	if err := ctrl.SetWeekOverride(ctx, 99); err == nil {
		t.Errorf("expected an error for a week not in the schedule")
	}

	if err := ctrl.SetWeekOverride(ctx, 0); err != nil {
		t.Fatalf("error clearing override: %v", err)
	}
	override, err := ctrl.GetWeekOverride(ctx)
	if err != nil {
		t.Fatalf("error reading override: %v", err)
	}
	if override != 0 {
		t.Errorf("override should be cleared, got %d", override)
	}
}

func TestSubmitPickValidationOrder(t *testing.T) {
	ctrl, mockClock, _ := newTestController(t)
	ctx := context.Background()

	p, err := ctrl.CreatePool(ctx, testutils.Alice.ID, "Pick Validation", 10, 0, model.VisibilityPublic, "", model.GameTypeRegular)
	if err != nil {
		t.Fatalf("error creating pool: %v", err)
	}
	// Burn the Bills for alice in week 1.
	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Alice.ID, "Bills", 1); err != nil {
		t.Fatalf("error submitting setup pick: %v", err)
	}

	tests := map[string]struct {
		user    string
		team    string
		week    int
		now     time.Time
		wantErr error
	}{
		"week locked": {
			user: testutils.Alice.ID, team: "Bills", week: 1,
			now: testutils.Week1Kickoff, wantErr: ErrWeekLocked,
		},
		// Lock is checked before anything else, even a nonsense team.
		"week locked beats unknown team": {
			user: testutils.Alice.ID, team: "Mariners", week: 1,
			now: testutils.Week1Kickoff.Add(time.Hour), wantErr: ErrWeekLocked,
		},
		"unknown team": {
			user: testutils.Alice.ID, team: "Mariners", week: 2,
			wantErr: ErrUnknownTeam,
		},
		"team not playing this week": {
			user: testutils.Alice.ID, team: "Seahawks", week: 2,
			wantErr: ErrTeamNotPlayingThisWeek,
		},
		"team already used": {
			user: testutils.Alice.ID, team: "Bills", week: 2,
			wantErr: ErrTeamAlreadyUsed,
		},
		"not a member": {
			user: testutils.Carol.ID, team: "Chiefs", week: 2,
			wantErr: ErrNotAMember,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			now := tc.now
			if now.IsZero() {
				now = testutils.Week1Kickoff.Add(-24 * time.Hour)
			}
			mockClock.Set(now)

			err := ctrl.SubmitPick(ctx, p.ID, tc.user, tc.team, tc.week)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("wanted %v, got %v", tc.wantErr, err)
			}
		})
	}

	// Nothing above should have changed alice's picks.
	got, err := ctrl.GetPool(ctx, p.ID)
	if err != nil {
		t.Fatalf("error loading pool: %v", err)
	}
	if got.PickFor(testutils.Alice.ID, 1) != "Bills" {
		t.Errorf("week 1 pick should still be Bills, got %s", got.PickFor(testutils.Alice.ID, 1))
	}
	if got.PickFor(testutils.Alice.ID, 2) != "" {
		t.Errorf("week 2 pick should be empty, got %s", got.PickFor(testutils.Alice.ID, 2))
	}
}

func TestSubmitPickRePick(t *testing.T) {
	ctrl, _, notifier := newTestController(t)
	ctx := context.Background()

	p, err := ctrl.CreatePool(ctx, testutils.Bob.ID, "Re-pick", 10, 0, model.VisibilityPublic, "", model.GameTypeRegular)
	if err != nil {
		t.Fatalf("error creating pool: %v", err)
	}

	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Bob.ID, "Bills", 1); err != nil {
		t.Fatalf("error submitting pick: %v", err)
	}
	// Changing the pick before lock is allowed and frees the first team.
	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Bob.ID, "Packers", 1); err != nil {
		t.Fatalf("error re-picking: %v", err)
	}
	// Re-submitting the same team for the same week is idempotent.
	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Bob.ID, "Packers", 1); err != nil {
		t.Fatalf("error re-submitting same pick: %v", err)
	}
	// Bills is free again for a later week.
	if err := ctrl.SubmitPick(ctx, p.ID, testutils.Bob.ID, "Bills", 2); err != nil {
		t.Fatalf("error using freed team: %v", err)
	}

	got, err := ctrl.GetPool(ctx, p.ID)
	if err != nil {
		t.Fatalf("error loading pool: %v", err)
	}
	if got.PickFor(testutils.Bob.ID, 1) != "Packers" {
		t.Errorf("week 1 pick - wanted Packers, got %s", got.PickFor(testutils.Bob.ID, 1))
	}
	if got.PickFor(testutils.Bob.ID, 2) != "Bills" {
		t.Errorf("week 2 pick - wanted Bills, got %s", got.PickFor(testutils.Bob.ID, 2))
	}

	// Each successful pick sends a confirmation.
	if !notifier.WaitForMessages(4, 2*time.Second) {
		t.Errorf("expected 4 pick confirmations, got %d", len(notifier.Messages()))
	}
}
