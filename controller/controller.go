package controller

import (
	"context"
	"sync"
	"time"

	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/push"
	"github.com/albertisntreal/showdown-survivor/schedule"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Authenticate logs a user in, registering them on first sight of the
	// email address. A wrong password for a known email is an error.
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID, displayName, avatarURL string) error
	AddPushSubscription(ctx context.Context, userID string, sub model.PushSubscription) error

	CreatePool(ctx context.Context, creatorID, name string, entryFee float64, maxPlayers int, visibility model.Visibility, joinKey string, gameType model.GameType) (*model.Pool, error)
	JoinPool(ctx context.Context, poolID, userID, suppliedKey string) error
	GetPool(ctx context.Context, id string) (*model.Pool, error)
	ListPools(ctx context.Context) ([]model.Pool, error)
	// DeletePool only deletes pools that never got going. Anything with
	// members or picks is refused.
	DeletePool(ctx context.Context, id string) error
	// CleanupUnusedPools deletes every unused pool and returns how many went.
	CleanupUnusedPools(ctx context.Context) (int, error)

	// CurrentWeek resolves the week in play, honoring the admin override
	// which is read fresh from the store on every call.
	CurrentWeek(ctx context.Context) (int, error)
	GetWeekOverride(ctx context.Context) (int, error)
	SetWeekOverride(ctx context.Context, week int) error
	SubmitPick(ctx context.Context, poolID, userID, teamName string, week int) error

	RecordWinner(ctx context.Context, week int, gameKey, winner string) error
	RecordWinnersBulk(ctx context.Context, week int, winners map[string]string) error
	GetWeekResult(ctx context.Context, week int) (*model.WeekResult, error)
	ProcessEliminations(ctx context.Context, week int) (*model.EliminationSummary, error)
	ClearWeekResults(ctx context.Context, week int) error
	RunPeriodicEliminations(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	BuyBack(ctx context.Context, poolID, userID string) error

	Schedule() *schedule.Schedule
}

type controller struct {
	clock    clock.Clock
	db       db.DB
	notifier push.Notifier
	schedule *schedule.Schedule
}

func New(clock clock.Clock, db db.DB, notifier push.Notifier, schedule *schedule.Schedule) (C, error) {
	c := &controller{
		clock:    clock,
		db:       db,
		notifier: notifier,
		schedule: schedule,
	}
	return c, nil
}

func (c *controller) Schedule() *schedule.Schedule {
	return c.schedule
}
