package controller

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/albertisntreal/showdown-survivor/testutils"
	"github.com/itbasis/go-clock"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// newTestController wires a controller against the shared test database with
// a mock clock parked the day before the first kickoff.
func newTestController(t *testing.T) (C, *clock.Mock, *testutils.RecordingNotifier) {
	t.Helper()

	mockClock := clock.NewMock()
	mockClock.Set(testutils.Week1Kickoff.Add(-24 * time.Hour))

	notifier := &testutils.RecordingNotifier{}
	ctrl, err := New(mockClock, testDB.DB, notifier, testutils.TestSchedule())
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return ctrl, mockClock, notifier
}
