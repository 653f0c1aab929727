package testutils

import (
	"context"
	"log"
	"time"

	"github.com/albertisntreal/showdown-survivor/containers"
	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/itbasis/go-clock"
)

var (
	Alice = &model.User{
		ID:           "user-alice",
		Email:        "alice@example.com",
		DisplayName:  "alice",
		PasswordHash: "aaaa",
		PasswordSalt: "bbbb",
		IsAdmin:      true,
	}
	Bob = &model.User{
		ID:           "user-bob",
		Email:        "bob@example.com",
		DisplayName:  "bob",
		PasswordHash: "aaaa",
		PasswordSalt: "bbbb",
	}
	Carol = &model.User{
		ID:           "user-carol",
		Email:        "carol@example.com",
		DisplayName:  "carol",
		PasswordHash: "aaaa",
		PasswordSalt: "bbbb",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestUsers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestUsers(db db.DB) error {
	users := []*model.User{
		Alice,
		Bob,
		Carol,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, u := range users {
		err := db.AddUser(ctx, u)
		if err != nil {
			return err
		}
	}

	return nil
}
