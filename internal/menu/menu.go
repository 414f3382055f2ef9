// Package menu runs the main menu loop and dispatches the player's choice to
// the game variants.
package menu

import (
	"context"
	"errors"
	"io"

	"github.com/samber/lo"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	game "github.com/Aeomanate/TableOfAdditionGame/internal/game"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

var options = []string{
	"Run without scores",
	"Run with scores for 30 sec",
	"Run with scores for 3 errors",
	`Show top "30s" scores`,
	`Show top "3 errors" scores`,
	"Exit",
}

type Menu struct {
	console *console.Console
	actions map[int]func(context.Context) error
}

// New builds the dispatch table. Only ranked games get a leaderboard entry.
func New(c *console.Console, endless game.Game, timed, errorLimited game.Ranked) *Menu {
	return &Menu{
		console: c,
		actions: map[int]func(context.Context) error{
			constants.MenuRunEndless:      endless.Run,
			constants.MenuRunTimed:        timed.Run,
			constants.MenuRunErrorLimited: errorLimited.Run,
			constants.MenuTopTimed:        timed.Top,
			constants.MenuTopErrorLimited: errorLimited.Top,
		},
	}
}

// Run shows the menu until the player exits or input ends. A cancelled ctx
// is returned as its error.
func (m *Menu) Run(ctx context.Context) error {
	c := m.console
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		lo.ForEach(options, func(option string, i int) {
			c.Printf("%d. %s\n", i+1, option)
		})
		c.Print(constants.PromptChoice)

		choice, _, err := c.ReadInt()
		if err != nil {
			return endOfInput(err)
		}
		if choice == constants.MenuExit {
			util.LogInfo("Exit selected")
			return nil
		}

		action, ok := m.actions[choice]
		if !ok {
			c.Print(constants.MessageWrongChoice)
			if err := c.WaitEnter(); err != nil {
				return endOfInput(err)
			}
			c.Clear()
			continue
		}

		util.LogInfo("Menu choice %d: %s", choice, options[choice-1])
		c.Clear()
		if err := action(ctx); err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		util.LogInfo("Input closed, leaving menu")
		return nil
	}
	return err
}
