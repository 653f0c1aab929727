package controller

import (
	"context"
	"fmt"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/push"
)

// CurrentWeek resolves the week in play. The admin override is read from the
// store on every call rather than cached, so every instance of the app agrees
// the moment it changes.
func (c *controller) CurrentWeek(ctx context.Context) (int, error) {
	override, err := c.db.GetWeekOverride(ctx)
	if err != nil {
		return 0, err
	}
	return c.schedule.CurrentWeek(c.clock.Now(), override), nil
}

func (c *controller) GetWeekOverride(ctx context.Context) (int, error) {
	return c.db.GetWeekOverride(ctx)
}

func (c *controller) SetWeekOverride(ctx context.Context, week int) error {
	if week != 0 && !c.schedule.HasWeek(week) {
		return fmt.Errorf("week %d is not in the schedule", week)
	}
	return c.db.SetWeekOverride(ctx, week)
}

// SubmitPick validates and records one user's pick for a week. The checks run
// in a fixed order so the caller always sees the most fundamental problem
// first: lock state, then team validity, then season-uniqueness.
func (c *controller) SubmitPick(ctx context.Context, poolID, userID, teamName string, week int) error {
	if c.schedule.IsWeekLocked(week, c.clock.Now()) {
		return ErrWeekLocked
	}
	team := model.ParseTeam(teamName)
	if team == nil {
		return ErrUnknownTeam
	}
	if !c.schedule.IsTeamPlaying(week, team) {
		return ErrTeamNotPlayingThisWeek
	}

	err := c.db.UpdatePool(ctx, poolID, func(p *model.Pool) error {
		if !p.IsMember(userID) {
			return ErrNotAMember
		}
		// A re-pick for the same week frees that week's earlier team, so only
		// other weeks count against season-uniqueness.
		for w, t := range p.Picks[userID] {
			if w != week && t == team.String() {
				return ErrTeamAlreadyUsed
			}
		}
		p.SetPick(userID, week, team.String())
		return nil
	})
	if err != nil {
		return err
	}

	c.notify(userID, push.Message{
		Title: "Pick confirmed",
		Body:  fmt.Sprintf("You're riding the %s in week %d.", team.Friendly(), week),
	})
	return nil
}
