package game

import (
	"context"
	"fmt"
	"time"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	models "github.com/Aeomanate/TableOfAdditionGame/internal/models"
	scores "github.com/Aeomanate/TableOfAdditionGame/internal/scores"
	session "github.com/Aeomanate/TableOfAdditionGame/internal/session"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

// Timed counts correct answers until the accumulated round time exceeds the
// limit. The menu calls it the "30s" game.
type Timed struct {
	deps   Deps
	player *session.Player
	store  scores.Store[models.ScoreRecord]
	board  *scores.Leaderboard[models.ScoreRecord]
	limit  time.Duration
}

// NewTimed loads the leaderboard from store.
func NewTimed(deps Deps, player *session.Player, store scores.Store[models.ScoreRecord], limit time.Duration) (*Timed, error) {
	board, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load timed leaderboard: %w", err)
	}
	return &Timed{deps: deps, player: player, store: store, board: board, limit: limit}, nil
}

func (g *Timed) Run(ctx context.Context) error {
	ctx = session.Start(ctx, "timed")
	c := g.deps.Console

	nick, err := g.player.CaptureNickname(ctx, c)
	if err != nil {
		return err
	}

	result := models.ScoreRecord{Nickname: nick}
	var elapsed time.Duration
	for elapsed <= g.limit {
		correct, took, err := g.deps.playTimedRound(ctx)
		if err != nil {
			return err
		}
		if correct {
			result.Scores++
		}
		elapsed += took
	}

	rank := g.board.Insert(result)
	util.LogSession(ctx, "Timed session finished: %q scored %d in %v, rank %d", nick, result.Scores, elapsed, rank+1)
	g.deps.save(ctx, func() error { return g.store.Save(g.board) })

	c.Printf("%s score: %d\n", result.Nickname, result.Scores)
	return g.deps.finish(ctx)
}

func (g *Timed) Top(ctx context.Context) error {
	header := []console.Cell{
		console.L(4, ""),
		console.L(constants.MaxNicknameLength+3, "Nickname"),
		console.L(5, "Score"),
	}
	return printTop(ctx, g.deps, g.board, header, func(r models.ScoreRecord) []console.Cell {
		return []console.Cell{
			console.L(constants.MaxNicknameLength, r.Nickname),
			console.L(3, ""),
			console.L(5, r.Scores),
		}
	})
}

// Records returns the in-memory leaderboard in order.
func (g *Timed) Records() []models.ScoreRecord {
	return g.board.All()
}
