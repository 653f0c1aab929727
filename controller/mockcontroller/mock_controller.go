package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/schedule"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
	Sched *schedule.Schedule
}

func (c *C) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	args := c.Called(ctx, email, password)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := c.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) UpdateProfile(ctx context.Context, userID, displayName, avatarURL string) error {
	args := c.Called(ctx, userID, displayName, avatarURL)
	return args.Error(0)
}

func (c *C) AddPushSubscription(ctx context.Context, userID string, sub model.PushSubscription) error {
	args := c.Called(ctx, userID, sub)
	return args.Error(0)
}

func (c *C) CreatePool(ctx context.Context, creatorID, name string, entryFee float64, maxPlayers int, visibility model.Visibility, joinKey string, gameType model.GameType) (*model.Pool, error) {
	args := c.Called(ctx, creatorID, name, entryFee, maxPlayers, visibility, joinKey, gameType)

	var p *model.Pool
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pool)
	}
	return p, args.Error(1)
}

func (c *C) JoinPool(ctx context.Context, poolID, userID, suppliedKey string) error {
	args := c.Called(ctx, poolID, userID, suppliedKey)
	return args.Error(0)
}

func (c *C) GetPool(ctx context.Context, id string) (*model.Pool, error) {
	args := c.Called(ctx, id)

	var p *model.Pool
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pool)
	}
	return p, args.Error(1)
}

func (c *C) ListPools(ctx context.Context) ([]model.Pool, error) {
	args := c.Called(ctx)

	var r []model.Pool
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Pool)
	}
	return r, args.Error(1)
}

func (c *C) DeletePool(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CleanupUnusedPools(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) CurrentWeek(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) GetWeekOverride(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) SetWeekOverride(ctx context.Context, week int) error {
	args := c.Called(ctx, week)
	return args.Error(0)
}

func (c *C) SubmitPick(ctx context.Context, poolID, userID, teamName string, week int) error {
	args := c.Called(ctx, poolID, userID, teamName, week)
	return args.Error(0)
}

func (c *C) RecordWinner(ctx context.Context, week int, gameKey, winner string) error {
	args := c.Called(ctx, week, gameKey, winner)
	return args.Error(0)
}

func (c *C) RecordWinnersBulk(ctx context.Context, week int, winners map[string]string) error {
	args := c.Called(ctx, week, winners)
	return args.Error(0)
}

func (c *C) GetWeekResult(ctx context.Context, week int) (*model.WeekResult, error) {
	args := c.Called(ctx, week)

	var r *model.WeekResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.WeekResult)
	}
	return r, args.Error(1)
}

func (c *C) ProcessEliminations(ctx context.Context, week int) (*model.EliminationSummary, error) {
	args := c.Called(ctx, week)

	var s *model.EliminationSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.EliminationSummary)
	}
	return s, args.Error(1)
}

func (c *C) ClearWeekResults(ctx context.Context, week int) error {
	args := c.Called(ctx, week)
	return args.Error(0)
}

func (c *C) RunPeriodicEliminations(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) BuyBack(ctx context.Context, poolID, userID string) error {
	args := c.Called(ctx, poolID, userID)
	return args.Error(0)
}

func (c *C) Schedule() *schedule.Schedule {
	return c.Sched
}
