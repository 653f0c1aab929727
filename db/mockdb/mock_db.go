package mockdb

import (
	"context"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := db.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := db.Called(ctx, email)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) AddUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}

func (db *DB) UpdateUser(ctx context.Context, id string, fn func(*model.User) error) error {
	args := db.Called(ctx, id, fn)
	return args.Error(0)
}

func (db *DB) GetPool(ctx context.Context, id string) (*model.Pool, error) {
	args := db.Called(ctx, id)

	var p *model.Pool
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pool)
	}
	return p, args.Error(1)
}

func (db *DB) ListPools(ctx context.Context) ([]model.Pool, error) {
	args := db.Called(ctx)

	var r []model.Pool
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Pool)
	}
	return r, args.Error(1)
}

func (db *DB) ListPoolIDs(ctx context.Context) ([]string, error) {
	args := db.Called(ctx)

	var r []string
	if args.Get(0) != nil {
		r = args.Get(0).([]string)
	}
	return r, args.Error(1)
}

func (db *DB) AddPool(ctx context.Context, p *model.Pool) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) UpdatePool(ctx context.Context, id string, fn func(*model.Pool) error) error {
	args := db.Called(ctx, id, fn)
	return args.Error(0)
}

func (db *DB) DeletePool(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetWeekResult(ctx context.Context, week int) (*model.WeekResult, error) {
	args := db.Called(ctx, week)

	var r *model.WeekResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.WeekResult)
	}
	return r, args.Error(1)
}

func (db *DB) UpsertWinner(ctx context.Context, week int, gameKey, winner string, recordedAt time.Time) error {
	args := db.Called(ctx, week, gameKey, winner, recordedAt)
	return args.Error(0)
}

func (db *DB) ClearWeekResults(ctx context.Context, week int) error {
	args := db.Called(ctx, week)
	return args.Error(0)
}

func (db *DB) GetWeekOverride(ctx context.Context) (int, error) {
	args := db.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (db *DB) SetWeekOverride(ctx context.Context, week int) error {
	args := db.Called(ctx, week)
	return args.Error(0)
}
