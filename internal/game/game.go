package game

import (
	"context"
	"time"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	problem "github.com/Aeomanate/TableOfAdditionGame/internal/problem"
	scores "github.com/Aeomanate/TableOfAdditionGame/internal/scores"
	timing "github.com/Aeomanate/TableOfAdditionGame/internal/timing"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

// Game plays one session per Run call.
type Game interface {
	Run(ctx context.Context) error
}

// Ranked is a game that keeps a leaderboard.
type Ranked interface {
	Game
	Top(ctx context.Context) error
}

// Deps is what every game variant plays against.
type Deps struct {
	Console     *console.Console
	Clock       timing.Clock
	Digits      problem.DigitSource
	RoundPause  time.Duration
	ResultPause time.Duration
	RevealEvery time.Duration
}

// playTimedRound plays one round followed by the inter-round pause and
// reports the round time including the pause.
func (d Deps) playTimedRound(ctx context.Context) (bool, time.Duration, error) {
	correct, took, err := timing.Measure(d.Clock, func() (bool, error) {
		return problem.PlayRound(d.Console, d.Digits)
	})
	if err != nil {
		return false, 0, err
	}
	if err := d.Clock.Sleep(ctx, d.RoundPause); err != nil {
		return false, 0, err
	}
	d.Console.Clear()
	return correct, took + d.RoundPause, nil
}

func (d Deps) finish(ctx context.Context) error {
	if err := d.Clock.Sleep(ctx, d.ResultPause); err != nil {
		return err
	}
	d.Console.Clear()
	return nil
}

func (d Deps) save(ctx context.Context, persist func() error) {
	if err := persist(); err != nil {
		util.LogWarn("[session_id=%v] Failed to save scores: %v", util.SessionID(ctx), err)
		d.Console.Printf("Failed to save scores: %v\n", err)
	}
}

// printTop writes the header and constants.LeaderboardSize rank rows. Rows
// backed by a record are revealed one by one.
func printTop[T scores.Ordered[T]](ctx context.Context, d Deps, lb *scores.Leaderboard[T], header []console.Cell, row func(T) []console.Cell) error {
	c := d.Console
	c.Table(header...)
	c.Print("\n")

	pacer := timing.NewPacer(d.RevealEvery)
	records := lb.Top(constants.LeaderboardSize)
	for i := range constants.LeaderboardSize {
		c.Table(console.R(2, i+1), console.L(0, ". "))
		if i < len(records) {
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
			c.Table(row(records[i])...)
		}
		c.Print("\n")
	}

	if err := c.WaitEnter(); err != nil {
		return err
	}
	c.Clear()
	return nil
}
