package controller

import (
	"context"
	"fmt"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/push"
)

// BuyBack reinstates an eliminated user in a buy-back pool. The cap is
// MaxBuybacks per user for the whole season, and each one costs more than the
// last. Payment is tracked in the pot, not enforced here.
func (c *controller) BuyBack(ctx context.Context, poolID, userID string) error {
	var used int
	var poolName string
	var members []string

	err := c.db.UpdatePool(ctx, poolID, func(p *model.Pool) error {
		if p.GameType != model.GameTypeBuyback {
			return ErrNotBuybackVariant
		}
		if !p.IsMember(userID) {
			return ErrNotAMember
		}
		if !p.IsEliminated(userID) {
			return ErrNotEliminated
		}
		if p.Buybacks[userID] >= model.MaxBuybacks {
			return ErrBuybackCapReached
		}

		if p.Buybacks == nil {
			p.Buybacks = make(map[string]int)
		}
		p.Buybacks[userID]++
		p.Reinstate(userID)

		used = p.Buybacks[userID]
		poolName = p.Name
		members = append([]string(nil), p.Players...)
		return nil
	})
	if err != nil {
		return err
	}

	c.notify(userID, push.Message{
		Title: "You're back in",
		Body:  fmt.Sprintf("Buy-back #%d accepted in %s.", used, poolName),
	})
	for _, memberID := range members {
		if memberID == userID {
			continue
		}
		c.notify(memberID, push.Message{
			Title: poolName,
			Body:  "An eliminated player just bought their way back in.",
		})
	}
	return nil
}
