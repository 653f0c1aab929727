package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound       error = errors.New("user not found")
	ErrPoolNotFound       error = errors.New("pool not found")
	ErrWeekResultNotFound error = errors.New("no results for week")
)

const weekOverrideKey = "current_week_override"

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

const userColumns = `id, email, display_name, avatar_url, password_hash,
	password_salt, is_admin, joined_pools, subscriptions, created`

func (db *postgresDB) GetUser(ctx context.Context, id string) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id=@id`, userColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %s: %w", id, err)
	}
	return u, nil
}

func (db *postgresDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE lower(email)=lower(@email)`, userColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"email": email})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user by email: %w", err)
	}
	return u, nil
}

func (db *postgresDB) AddUser(ctx context.Context, u *model.User) error {
	if u == nil {
		return errors.New("AddUser - user is nil")
	}
	const query = `INSERT INTO users (
		id,
		email,
		display_name,
		avatar_url,
		password_hash,
		password_salt,
		is_admin,
		joined_pools,
		subscriptions,
		created
	) VALUES (
		@id,
		@email,
		@displayName,
		@avatarURL,
		@passwordHash,
		@passwordSalt,
		@isAdmin,
		@joinedPools,
		@subscriptions,
		@created
	)`

	if u.Created.IsZero() {
		u.Created = db.clock.Now().UTC()
	}
	_, err := db.pool.Exec(ctx, query, namedArgsForUser(u))
	if err != nil {
		return fmt.Errorf("error inserting user(%s): %w", u.ID, err)
	}
	return nil
}

func (db *postgresDB) UpdateUser(ctx context.Context, id string, fn func(*model.User) error) error {
	selectForUpdate := fmt.Sprintf(`SELECT %s FROM users WHERE id=@id FOR UPDATE`, userColumns)
	const update = `UPDATE users
		SET email=@email,
			display_name=@displayName,
			avatar_url=@avatarURL,
			password_hash=@passwordHash,
			password_salt=@passwordSalt,
			is_admin=@isAdmin,
			joined_pools=@joinedPools,
			subscriptions=@subscriptions
		WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, selectForUpdate, pgx.NamedArgs{"id": id})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error reading user %s for update: %w", id, err)
	}

	if err := fn(u); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, update, namedArgsForUser(u)); err != nil {
		return fmt.Errorf("error updating user(%s): %w", id, err)
	}
	return tx.Commit(ctx)
}

const poolColumns = `id, name, creator_id, entry_fee, max_players, visibility,
	join_key, game_type, players, picks, eliminated, buybacks, winner_id, created`

func (db *postgresDB) GetPool(ctx context.Context, id string) (*model.Pool, error) {
	query := fmt.Sprintf(`SELECT %s FROM pools WHERE id=@id`, poolColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPool(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("error scanning pool %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) ListPools(ctx context.Context) ([]model.Pool, error) {
	query := fmt.Sprintf(`SELECT %s FROM pools ORDER BY created`, poolColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pools: %w", err)
	}

	results := make([]model.Pool, 0, 8)
	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *postgresDB) ListPoolIDs(ctx context.Context) ([]string, error) {
	const query = `SELECT id FROM pools ORDER BY created`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pool ids: %w", err)
	}

	ids := make([]string, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (db *postgresDB) AddPool(ctx context.Context, p *model.Pool) error {
	if p == nil {
		return errors.New("AddPool - pool is nil")
	}
	const query = `INSERT INTO pools (
		id,
		name,
		creator_id,
		entry_fee,
		max_players,
		visibility,
		join_key,
		game_type,
		players,
		picks,
		eliminated,
		buybacks,
		winner_id,
		created
	) VALUES (
		@id,
		@name,
		@creatorID,
		@entryFee,
		@maxPlayers,
		@visibility,
		@joinKey,
		@gameType,
		@players,
		@picks,
		@eliminated,
		@buybacks,
		@winnerID,
		@created
	)`

	if p.Created.IsZero() {
		p.Created = db.clock.Now().UTC()
	}
	_, err := db.pool.Exec(ctx, query, namedArgsForPool(p))
	if err != nil {
		return fmt.Errorf("error inserting pool(%s): %w", p.ID, err)
	}
	return nil
}

// UpdatePool is the single write path for pool mutations. It reads the row
// with a lock, applies fn, and writes the result back in one transaction. Any
// error from fn rolls the whole thing back.
func (db *postgresDB) UpdatePool(ctx context.Context, id string, fn func(*model.Pool) error) error {
	selectForUpdate := fmt.Sprintf(`SELECT %s FROM pools WHERE id=@id FOR UPDATE`, poolColumns)
	const update = `UPDATE pools
		SET name=@name,
			entry_fee=@entryFee,
			max_players=@maxPlayers,
			visibility=@visibility,
			join_key=@joinKey,
			game_type=@gameType,
			players=@players,
			picks=@picks,
			eliminated=@eliminated,
			buybacks=@buybacks,
			winner_id=@winnerID
		WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, selectForUpdate, pgx.NamedArgs{"id": id})
	p, err := scanPool(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPoolNotFound
		}
		return fmt.Errorf("error reading pool %s for update: %w", id, err)
	}

	if err := fn(p); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, update, namedArgsForPool(p)); err != nil {
		return fmt.Errorf("error updating pool(%s): %w", id, err)
	}
	return tx.Commit(ctx)
}

func (db *postgresDB) DeletePool(ctx context.Context, id string) error {
	const query = `DELETE FROM pools WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting pool(%s): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPoolNotFound
	}
	return nil
}

func (db *postgresDB) GetWeekResult(ctx context.Context, week int) (*model.WeekResult, error) {
	const query = `SELECT winners FROM week_results WHERE week=@week`

	result := model.WeekResult{Week: week}
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"week": week})
	if err := row.Scan(&result.Winners); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeekResultNotFound
		}
		return nil, fmt.Errorf("error scanning week %d results: %w", week, err)
	}
	return &result, nil
}

func (db *postgresDB) UpsertWinner(ctx context.Context, week int, gameKey, winner string, recordedAt time.Time) error {
	// The || merge keeps every other game's entry and replaces just this one.
	const query = `INSERT INTO week_results (week, winners)
		VALUES (@week, @entry)
		ON CONFLICT (week) DO UPDATE SET winners = week_results.winners || @entry`

	entry := map[string]model.RecordedWinner{
		gameKey: {Winner: winner, RecordedAt: recordedAt.UTC()},
	}
	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"week": week, "entry": entry})
	if err != nil {
		return fmt.Errorf("error recording winner for week %d: %w", week, err)
	}
	return nil
}

func (db *postgresDB) ClearWeekResults(ctx context.Context, week int) error {
	const query = `DELETE FROM week_results WHERE week=@week`

	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"week": week})
	if err != nil {
		return fmt.Errorf("error clearing week %d results: %w", week, err)
	}
	return nil
}

func (db *postgresDB) GetWeekOverride(ctx context.Context) (int, error) {
	const query = `SELECT value FROM config WHERE key=@key`

	var week int
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"key": weekOverrideKey})
	if err := row.Scan(&week); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error reading week override: %w", err)
	}
	return week, nil
}

func (db *postgresDB) SetWeekOverride(ctx context.Context, week int) error {
	if week == 0 {
		const del = `DELETE FROM config WHERE key=@key`
		if _, err := db.pool.Exec(ctx, del, pgx.NamedArgs{"key": weekOverrideKey}); err != nil {
			return fmt.Errorf("error clearing week override: %w", err)
		}
		return nil
	}

	const query = `INSERT INTO config (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE SET value = @value`

	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"key": weekOverrideKey, "value": week})
	if err != nil {
		return fmt.Errorf("error setting week override: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var result model.User
	var avatarURL sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Email,
		&result.DisplayName,
		&avatarURL,
		&result.PasswordHash,
		&result.PasswordSalt,
		&result.IsAdmin,
		&result.JoinedPools,
		&result.Subscriptions,
		&created)

	if err != nil {
		return nil, err
	}

	result.AvatarURL = valueOrEmpty(avatarURL)
	result.Created = created.Time

	return &result, nil
}

func scanPool(row pgx.Row) (*model.Pool, error) {
	var result model.Pool
	var visibility, gameType string
	var joinKey, winnerID sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.CreatorID,
		&result.EntryFee,
		&result.MaxPlayers,
		&visibility,
		&joinKey,
		&gameType,
		&result.Players,
		&result.Picks,
		&result.Eliminated,
		&result.Buybacks,
		&winnerID,
		&created)

	if err != nil {
		return nil, err
	}

	result.Visibility = model.ParseVisibility(visibility)
	result.GameType = model.ParseGameType(gameType)
	result.JoinKey = valueOrEmpty(joinKey)
	result.WinnerID = valueOrEmpty(winnerID)
	result.Created = created.Time

	return &result, nil
}

func namedArgsForUser(u *model.User) pgx.NamedArgs {
	subs := u.Subscriptions
	if subs == nil {
		subs = []model.PushSubscription{}
	}
	joined := u.JoinedPools
	if joined == nil {
		joined = []string{}
	}
	return pgx.NamedArgs{
		"id":          u.ID,
		"email":       u.Email,
		"displayName": u.DisplayName,
		"avatarURL": sql.NullString{
			String: u.AvatarURL,
			Valid:  u.AvatarURL != "",
		},
		"passwordHash":  u.PasswordHash,
		"passwordSalt":  u.PasswordSalt,
		"isAdmin":       u.IsAdmin,
		"joinedPools":   joined,
		"subscriptions": subs,
		"created": pgtype.Timestamptz{
			Time:             u.Created,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
}

func namedArgsForPool(p *model.Pool) pgx.NamedArgs {
	players := p.Players
	if players == nil {
		players = []string{}
	}
	picks := p.Picks
	if picks == nil {
		picks = map[string]map[int]string{}
	}
	eliminated := p.Eliminated
	if eliminated == nil {
		eliminated = []string{}
	}
	buybacks := p.Buybacks
	if buybacks == nil {
		buybacks = map[string]int{}
	}
	return pgx.NamedArgs{
		"id":         p.ID,
		"name":       p.Name,
		"creatorID":  p.CreatorID,
		"entryFee":   p.EntryFee,
		"maxPlayers": p.MaxPlayers,
		"visibility": string(p.Visibility),
		"joinKey": sql.NullString{
			String: p.JoinKey,
			Valid:  p.JoinKey != "",
		},
		"gameType":   string(p.GameType),
		"players":    players,
		"picks":      picks,
		"eliminated": eliminated,
		"buybacks":   buybacks,
		"winnerID": sql.NullString{
			String: p.WinnerID,
			Valid:  p.WinnerID != "",
		},
		"created": pgtype.Timestamptz{
			Time:             p.Created,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
