package session

import (
	"context"

	"github.com/google/uuid"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	models "github.com/Aeomanate/TableOfAdditionGame/internal/models"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

// Player holds what the program remembers about the person at the keyboard
// for the lifetime of the process.
type Player struct {
	nickname models.Nickname
}

func (p *Player) Nickname() models.Nickname {
	return p.nickname
}

// Start tags ctx with a fresh session id for log correlation.
func Start(ctx context.Context, mode string) context.Context {
	id := uuid.NewString()
	ctx = util.WithSessionID(ctx, id)
	util.LogSession(ctx, "Started %s session", mode)
	return ctx
}

// CaptureNickname prompts until a nickname of acceptable length is entered.
// An empty line keeps the remembered nickname. The accepted nickname is
// remembered for the next session.
func (p *Player) CaptureNickname(ctx context.Context, c *console.Console) (models.Nickname, error) {
	for {
		if p.nickname.IsEmpty() {
			c.Print(constants.PromptNickname)
		} else {
			c.Printf("Nickname [%s].\n", p.nickname)
			c.Print(constants.PromptRedefine)
		}

		line, err := c.ReadLine()
		if err != nil {
			return models.Nickname{}, err
		}
		if line == "" {
			c.Clear()
			return p.nickname, nil
		}

		n, err := models.NewNickname(line)
		if err != nil {
			util.LogSession(ctx, "Rejected nickname: %v", err)
			c.Print(constants.MessageTooLong)
			continue
		}
		p.nickname = n
		c.Clear()
		util.LogSession(ctx, "Playing as %q", n)
		return n, nil
	}
}
