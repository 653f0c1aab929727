package controller

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/google/uuid"
)

const (
	defaultPoolName   = "New Pool"
	defaultMaxPlayers = 50
)

func (c *controller) CreatePool(ctx context.Context, creatorID, name string, entryFee float64, maxPlayers int, visibility model.Visibility, joinKey string, gameType model.GameType) (*model.Pool, error) {
	// Make sure the creator exists before writing anything.
	if _, err := c.db.GetUser(ctx, creatorID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultPoolName
	}
	if entryFee < 0 {
		entryFee = 0
	}
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}
	if visibility != model.VisibilityPrivate {
		joinKey = ""
	}

	p := &model.Pool{
		ID:         uuid.NewString(),
		Name:       name,
		CreatorID:  creatorID,
		EntryFee:   entryFee,
		MaxPlayers: maxPlayers,
		Visibility: visibility,
		JoinKey:    joinKey,
		GameType:   gameType,
		Players:    []string{creatorID},
		Created:    c.clock.Now().UTC(),
	}
	if err := c.db.AddPool(ctx, p); err != nil {
		return nil, err
	}

	err := c.db.UpdateUser(ctx, creatorID, func(u *model.User) error {
		if !u.HasJoined(p.ID) {
			u.JoinedPools = append(u.JoinedPools, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error adding pool %s to creator: %w", p.ID, err)
	}
	return p, nil
}

func (c *controller) JoinPool(ctx context.Context, poolID, userID, suppliedKey string) error {
	if _, err := c.db.GetUser(ctx, userID); err != nil {
		return err
	}

	err := c.db.UpdatePool(ctx, poolID, func(p *model.Pool) error {
		if p.IsMember(userID) {
			// Joining twice is fine, nothing changes.
			return nil
		}
		if len(p.Players) >= p.MaxPlayers {
			return ErrPoolFull
		}
		if p.Visibility == model.VisibilityPrivate && suppliedKey != p.JoinKey {
			return ErrInvalidJoinKey
		}
		p.Players = append(p.Players, userID)
		return nil
	})
	if err != nil {
		return err
	}

	return c.db.UpdateUser(ctx, userID, func(u *model.User) error {
		if !u.HasJoined(poolID) {
			u.JoinedPools = append(u.JoinedPools, poolID)
		}
		return nil
	})
}

func (c *controller) GetPool(ctx context.Context, id string) (*model.Pool, error) {
	return c.db.GetPool(ctx, id)
}

func (c *controller) ListPools(ctx context.Context) ([]model.Pool, error) {
	return c.db.ListPools(ctx)
}

func (c *controller) DeletePool(ctx context.Context, id string) error {
	p, err := c.db.GetPool(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsUnused() {
		return ErrPoolInUse
	}
	return c.db.DeletePool(ctx, id)
}

func (c *controller) CleanupUnusedPools(ctx context.Context) (int, error) {
	pools, err := c.db.ListPools(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, p := range pools {
		if !p.IsUnused() {
			continue
		}
		if err := c.db.DeletePool(ctx, p.ID); err != nil {
			log.Printf("error deleting unused pool %s: %v", p.ID, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
