package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/albertisntreal/showdown-survivor/controller"
	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/push"
	"github.com/albertisntreal/showdown-survivor/schedule"
	"github.com/albertisntreal/showdown-survivor/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	// An explicit schedule file wins over the season embedded in the binary.
	var sched *schedule.Schedule
	if path := os.Getenv("SCHEDULE_FILE"); path != "" {
		sched, err = schedule.LoadFile(path)
	} else {
		sched, err = schedule.Default()
	}
	if err != nil {
		log.Fatalf("error loading schedule: %v", err)
	}

	notifier := push.New(
		os.Getenv("VAPID_PUBLIC_KEY"),
		os.Getenv("VAPID_PRIVATE_KEY"),
		os.Getenv("VAPID_SUBSCRIBER"))

	ctrl, err := controller.New(clock, db, notifier, sched)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	cfg := web.Config{
		Port:           portNum,
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AdminUser:      os.Getenv("ADMIN_USER"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		VAPIDPublicKey: os.Getenv("VAPID_PUBLIC_KEY"),
	}
	if cfg.SessionSecret == "" {
		log.Fatalf("SESSION_SECRET must be set")
	}
	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		log.Fatalf("ADMIN_USER and ADMIN_PASSWORD must be set")
	}

	server, err := web.NewServer(cfg, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that sweeps recorded results into eliminations every hour.
	wg.Add(1)
	go ctrl.RunPeriodicEliminations(time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
