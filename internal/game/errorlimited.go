package game

import (
	"context"
	"fmt"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	models "github.com/Aeomanate/TableOfAdditionGame/internal/models"
	scores "github.com/Aeomanate/TableOfAdditionGame/internal/scores"
	session "github.com/Aeomanate/TableOfAdditionGame/internal/session"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

// ErrorLimited counts correct answers and total time until the player has
// answered maxErrors questions wrong.
type ErrorLimited struct {
	deps      Deps
	player    *session.Player
	store     scores.Store[models.TimedScoreRecord]
	board     *scores.Leaderboard[models.TimedScoreRecord]
	maxErrors int
}

func NewErrorLimited(deps Deps, player *session.Player, store scores.Store[models.TimedScoreRecord], maxErrors int) (*ErrorLimited, error) {
	board, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load error-limited leaderboard: %w", err)
	}
	return &ErrorLimited{deps: deps, player: player, store: store, board: board, maxErrors: maxErrors}, nil
}

func (g *ErrorLimited) Run(ctx context.Context) error {
	ctx = session.Start(ctx, "error-limited")
	c := g.deps.Console

	nick, err := g.player.CaptureNickname(ctx, c)
	if err != nil {
		return err
	}

	result := models.TimedScoreRecord{ScoreRecord: models.ScoreRecord{Nickname: nick}}
	for wrong := 0; wrong < g.maxErrors; {
		correct, took, err := g.deps.playTimedRound(ctx)
		if err != nil {
			return err
		}
		if correct {
			result.Scores++
		} else {
			wrong++
		}
		result.Duration += took
	}

	rank := g.board.Insert(result)
	util.LogSession(ctx, "Error-limited session finished: %q scored %d in %v, rank %d", nick, result.Scores, result.Duration, rank+1)
	g.deps.save(ctx, func() error { return g.store.Save(g.board) })

	c.Printf("%s score: %d, time: %s\n", result.Nickname, result.Scores, util.FormatDuration(result.Duration))
	return g.deps.finish(ctx)
}

func (g *ErrorLimited) Top(ctx context.Context) error {
	nickWidth := constants.MaxNicknameLength + 3
	header := []console.Cell{
		console.L(4, ""),
		console.L(nickWidth, "Nickname"),
		console.L(5+3, "Score"),
		console.L(constants.DurationColumnWidth, "Time"),
	}
	return printTop(ctx, g.deps, g.board, header, func(r models.TimedScoreRecord) []console.Cell {
		return []console.Cell{
			console.L(nickWidth, r.Nickname),
			console.L(5+3, r.Scores),
			console.L(constants.DurationColumnWidth, util.FormatDuration(r.Duration)),
		}
	})
}

func (g *ErrorLimited) Records() []models.TimedScoreRecord {
	return g.board.All()
}
