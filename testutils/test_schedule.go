package testutils

import (
	"log"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/schedule"
)

// Week1Kickoff is the earliest kickoff in the schedule from TestSchedule.
// Tests control lock state by setting a mock clock before or after it.
var Week1Kickoff = time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)

// TestSchedule builds a small three-week schedule with fixed kickoffs. Week 1
// opens with Ravens @ Chiefs at Week1Kickoff.
func TestSchedule() *schedule.Schedule {
	weeks := map[int][]schedule.Game{
		1: {
			{Away: model.TEAM_RAVENS, Home: model.TEAM_CHIEFS, Kickoff: Week1Kickoff},
			{Away: model.TEAM_BILLS, Home: model.TEAM_JETS, Kickoff: Week1Kickoff.Add(3 * time.Hour)},
			{Away: model.TEAM_PACKERS, Home: model.TEAM_BEARS, Kickoff: Week1Kickoff.Add(3 * time.Hour)},
		},
		2: {
			{Away: model.TEAM_CHIEFS, Home: model.TEAM_BILLS, Kickoff: Week1Kickoff.AddDate(0, 0, 7)},
			{Away: model.TEAM_JETS, Home: model.TEAM_RAVENS, Kickoff: Week1Kickoff.AddDate(0, 0, 7).Add(3 * time.Hour)},
		},
		3: {
			{Away: model.TEAM_BEARS, Home: model.TEAM_CHIEFS, Kickoff: Week1Kickoff.AddDate(0, 0, 14)},
		},
	}

	s, err := schedule.New(model.AllTeams(), weeks)
	if err != nil {
		log.Fatalf("error building test schedule: %v", err)
	}
	return s
}
