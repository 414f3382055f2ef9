package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	problem "github.com/Aeomanate/TableOfAdditionGame/internal/problem"
	scores "github.com/Aeomanate/TableOfAdditionGame/internal/scores"
)

var errDisk = errors.New("disk full")

type StoreMock[T scores.Ordered[T]] struct {
	mock.Mock
}

func (m *StoreMock[T]) Load() (*scores.Leaderboard[T], error) {
	args := m.Called()
	lb, _ := args.Get(0).(*scores.Leaderboard[T])
	return lb, args.Error(1)
}

func (m *StoreMock[T]) Save(lb *scores.Leaderboard[T]) error {
	args := m.Called(lb)
	return args.Error(0)
}

// fakeClock advances by step on every Now call and by d on every Sleep.
type fakeClock struct {
	now   time.Time
	step  time.Duration
	slept time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.now = c.now.Add(d)
	c.slept += d
	return ctx.Err()
}

func testDeps(input string, digits ...int) (Deps, *bytes.Buffer, *fakeClock) {
	var out bytes.Buffer
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	return Deps{
		Console:     console.New(strings.NewReader(input), &out),
		Clock:       clock,
		Digits:      &problem.Script{Digits: digits},
		RoundPause:  500 * time.Millisecond,
		ResultPause: 1500 * time.Millisecond,
	}, &out, clock
}
