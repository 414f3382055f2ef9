package game

import (
	"context"
	"strings"

	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	problem "github.com/Aeomanate/TableOfAdditionGame/internal/problem"
	session "github.com/Aeomanate/TableOfAdditionGame/internal/session"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

// Endless asks questions until the player declines to continue. It keeps no
// score and has no leaderboard.
type Endless struct {
	deps Deps
}

func NewEndless(deps Deps) *Endless {
	return &Endless{deps: deps}
}

func (g *Endless) Run(ctx context.Context) error {
	ctx = session.Start(ctx, "endless")
	c := g.deps.Console
	rounds, correct := 0, 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := problem.PlayRound(c, g.deps.Digits)
		if err != nil {
			return err
		}
		rounds++
		if ok {
			correct++
		}

		c.Print(constants.PromptContinue)
		reply, err := c.ReadLine()
		if err != nil {
			return err
		}
		c.Clear()
		if strings.HasPrefix(reply, "0") {
			util.LogSession(ctx, "Endless session ended after %d rounds, %d correct", rounds, correct)
			return nil
		}
	}
}
