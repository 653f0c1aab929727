package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/push"
	"github.com/albertisntreal/showdown-survivor/schedule"
)

// RecordWinner stores the outcome of one game. Re-recording the same game
// replaces the earlier entry, which is how corrections are made. The winner
// must be one of the two teams in the keyed matchup.
func (c *controller) RecordWinner(ctx context.Context, week int, gameKey, winner string) error {
	team := model.ParseTeam(winner)
	if team == nil {
		return ErrUnknownTeam
	}

	game, ok := findGame(c.schedule, week, gameKey)
	if !ok {
		return fmt.Errorf("no game %q in week %d", gameKey, week)
	}
	if !team.Equals(game.Home) && !team.Equals(game.Away) {
		return fmt.Errorf("%s did not play in %q", team, gameKey)
	}

	return c.db.UpsertWinner(ctx, week, gameKey, team.String(), c.clock.Now().UTC())
}

// RecordWinnersBulk records a batch of outcomes, the shape the admin results
// form submits. Games without a winner entered yet come through as empty
// strings and are skipped.
func (c *controller) RecordWinnersBulk(ctx context.Context, week int, winners map[string]string) error {
	for gameKey, winner := range winners {
		if winner == "" {
			continue
		}
		if err := c.RecordWinner(ctx, week, gameKey, winner); err != nil {
			return fmt.Errorf("error recording %q: %w", gameKey, err)
		}
	}
	return nil
}

func (c *controller) GetWeekResult(ctx context.Context, week int) (*model.WeekResult, error) {
	return c.db.GetWeekResult(ctx, week)
}

// ProcessEliminations applies every recorded result for the week to every
// pool: anyone whose pick for the week is a losing team is moved to the
// eliminated set and notified. Safe to run repeatedly, members already
// eliminated are never counted twice.
func (c *controller) ProcessEliminations(ctx context.Context, week int) (*model.EliminationSummary, error) {
	summary := &model.EliminationSummary{Week: week}

	result, err := c.db.GetWeekResult(ctx, week)
	if err != nil {
		if errors.Is(err, db.ErrWeekResultNotFound) {
			// Nothing recorded yet, nothing to do.
			return summary, nil
		}
		return nil, err
	}

	poolIDs, err := c.db.ListPoolIDs(ctx)
	if err != nil {
		return nil, err
	}

	for _, game := range c.schedule.GamesInWeek(week) {
		winner := result.WinnerFor(game.Key())
		if winner == "" {
			continue
		}
		loser := game.Home.String()
		if winner == loser {
			loser = game.Away.String()
		}

		outcome := model.GameOutcome{GameKey: game.Key(), Winner: winner, Loser: loser}
		for _, poolID := range poolIDs {
			var eliminated []string
			err := c.db.UpdatePool(ctx, poolID, func(p *model.Pool) error {
				eliminated = eliminated[:0]
				for _, userID := range p.Players {
					if p.PickFor(userID, week) != loser {
						continue
					}
					if p.Eliminate(userID) {
						eliminated = append(eliminated, userID)
					}
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("error eliminating in pool %s: %w", poolID, err)
			}
			for _, userID := range eliminated {
				c.notify(userID, push.Message{
					Title: "Eliminated",
					Body:  fmt.Sprintf("The %s lost in week %d and took you down with them.", loser, week),
				})
			}
			outcome.Eliminated = append(outcome.Eliminated, eliminated...)
		}
		summary.Eliminated += len(outcome.Eliminated)
		summary.Games = append(summary.Games, outcome)
	}
	return summary, nil
}

// ClearWeekResults wipes the recorded outcomes for a week so they can be
// re-entered. Eliminations already applied from those results stay applied;
// reinstating anyone is a manual buy-back or admin action.
func (c *controller) ClearWeekResults(ctx context.Context, week int) error {
	return c.db.ClearWeekResults(ctx, week)
}

func (c *controller) RunPeriodicEliminations(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			week, err := c.CurrentWeek(ctx)
			if err != nil {
				log.Printf("error resolving current week: %v", err)
				continue
			}
			if s, err := c.ProcessEliminations(ctx, week); err != nil {
				log.Printf("error processing week %d eliminations: %v", week, err)
			} else if s.Eliminated > 0 {
				log.Printf("eliminated %d players in week %d", s.Eliminated, week)
			}
		}
	}
}

func findGame(s *schedule.Schedule, week int, gameKey string) (schedule.Game, bool) {
	for _, g := range s.GamesInWeek(week) {
		if g.Key() == gameKey {
			return g, true
		}
	}
	return schedule.Game{}, false
}
