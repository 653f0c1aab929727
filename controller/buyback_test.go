package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/testutils"
)

func TestBuyBack(t *testing.T) {
	ctrl, _, notifier := newTestController(t)
	ctx := context.Background()

	regular, err := ctrl.CreatePool(ctx, testutils.Alice.ID, "No Re-entry", 20, 0, model.VisibilityPublic, "", model.GameTypeRegular)
	if err != nil {
		t.Fatalf("error creating pool: %v", err)
	}
	buyback, err := ctrl.CreatePool(ctx, testutils.Alice.ID, "Second Chances", 20, 0, model.VisibilityPublic, "", model.GameTypeBuyback)
	if err != nil {
		t.Fatalf("error creating pool: %v", err)
	}
	if err := ctrl.JoinPool(ctx, buyback.ID, testutils.Bob.ID, ""); err != nil {
		t.Fatalf("error joining pool: %v", err)
	}

	// A regular pool never allows re-entry, even for its creator.
	if err := ctrl.BuyBack(ctx, regular.ID, testutils.Alice.ID); !errors.Is(err, ErrNotBuybackVariant) {
		t.Errorf("expected ErrNotBuybackVariant, got %v", err)
	}
	if err := ctrl.BuyBack(ctx, buyback.ID, testutils.Carol.ID); !errors.Is(err, ErrNotAMember) {
		t.Errorf("expected ErrNotAMember, got %v", err)
	}
	if err := ctrl.BuyBack(ctx, buyback.ID, testutils.Bob.ID); !errors.Is(err, ErrNotEliminated) {
		t.Errorf("expected ErrNotEliminated, got %v", err)
	}

	eliminateBob := func() {
		err := testDB.DB.UpdatePool(ctx, buyback.ID, func(p *model.Pool) error {
			p.Eliminate(testutils.Bob.ID)
			return nil
		})
		if err != nil {
			t.Fatalf("error eliminating bob: %v", err)
		}
	}

	// First and second buy-backs succeed and reinstate bob each time.
	for want := 1; want <= model.MaxBuybacks; want++ {
		eliminateBob()
		if err := ctrl.BuyBack(ctx, buyback.ID, testutils.Bob.ID); err != nil {
			t.Fatalf("buy-back #%d failed: %v", want, err)
		}
		p, err := ctrl.GetPool(ctx, buyback.ID)
		if err != nil {
			t.Fatalf("error loading pool: %v", err)
		}
		if p.IsEliminated(testutils.Bob.ID) {
			t.Errorf("bob should be reinstated after buy-back #%d", want)
		}
		if p.Buybacks[testutils.Bob.ID] != want {
			t.Errorf("buybacks - wanted %d, got %d", want, p.Buybacks[testutils.Bob.ID])
		}
	}

	// The third one is refused and bob stays out.
	eliminateBob()
	if err := ctrl.BuyBack(ctx, buyback.ID, testutils.Bob.ID); !errors.Is(err, ErrBuybackCapReached) {
		t.Errorf("expected ErrBuybackCapReached, got %v", err)
	}
	p, err := ctrl.GetPool(ctx, buyback.ID)
	if err != nil {
		t.Fatalf("error loading pool: %v", err)
	}
	if !p.IsEliminated(testutils.Bob.ID) {
		t.Errorf("bob should still be eliminated after the refused buy-back")
	}
	if p.Buybacks[testutils.Bob.ID] != model.MaxBuybacks {
		t.Errorf("buybacks - wanted %d, got %d", model.MaxBuybacks, p.Buybacks[testutils.Bob.ID])
	}

	// Each successful buy-back notifies bob and broadcasts to the pool.
	if !notifier.WaitForMessages(4, 2*time.Second) {
		t.Fatalf("expected 4 notifications, got %d", len(notifier.Messages()))
	}
	bobMsgs := 0
	for _, m := range notifier.Messages() {
		if m.UserID == testutils.Bob.ID && m.Message.Title == "You're back in" {
			bobMsgs++
		}
	}
	if bobMsgs != 2 {
		t.Errorf("expected 2 buy-back confirmations for bob, got %d", bobMsgs)
	}
}
