package db

import (
	"context"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
)

type DB interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	AddUser(ctx context.Context, u *model.User) error
	// UpdateUser applies fn to the stored user under a row lock and persists
	// the result. If fn returns an error the user is left unmodified.
	UpdateUser(ctx context.Context, id string, fn func(*model.User) error) error

	GetPool(ctx context.Context, id string) (*model.Pool, error)
	ListPools(ctx context.Context) ([]model.Pool, error)
	ListPoolIDs(ctx context.Context) ([]string, error)
	AddPool(ctx context.Context, p *model.Pool) error
	// UpdatePool applies fn to the stored pool under a row lock and persists
	// the result. If fn returns an error the pool is left unmodified. All
	// read-modify-write sequences on a pool go through here so that two
	// concurrent mutations can never interleave.
	UpdatePool(ctx context.Context, id string, fn func(*model.Pool) error) error
	DeletePool(ctx context.Context, id string) error

	GetWeekResult(ctx context.Context, week int) (*model.WeekResult, error)
	// UpsertWinner records the winner for a single game key. Recording a
	// different winner for the same game replaces the earlier entry.
	UpsertWinner(ctx context.Context, week int, gameKey, winner string, recordedAt time.Time) error
	ClearWeekResults(ctx context.Context, week int) error

	// GetWeekOverride returns the admin week override, or 0 when unset.
	GetWeekOverride(ctx context.Context) (int, error)
	// SetWeekOverride stores the override. Setting 0 clears it.
	SetWeekOverride(ctx context.Context, week int) error
}
