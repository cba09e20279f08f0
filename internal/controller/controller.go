// Package controller mediates between terminal input events and game model
// operations. It holds no game rules of its own.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/tomswanson/triviamaze/internal/entity"
	"github.com/tomswanson/triviamaze/internal/game"
	"github.com/tomswanson/triviamaze/internal/maze"
	"github.com/tomswanson/triviamaze/internal/trivia"
	"github.com/tomswanson/triviamaze/internal/ui"
)

// Controller drives the game loop: render, poll an input event, invoke the
// matching model operation, and surface the model's events back to the view.
type Controller struct {
	model    *game.Model
	screen   *ui.Screen
	renderer *ui.Renderer
	log      *zap.SugaredLogger

	dialog      ui.Dialog
	message     string
	showFullMap bool
	running     bool
}

// New creates a controller wiring the model to the screen.
func New(model *game.Model, screen *ui.Screen, renderer *ui.Renderer, log *zap.SugaredLogger) *Controller {
	return &Controller{
		model:    model,
		screen:   screen,
		renderer: renderer,
		log:      log,
	}
}

// Run executes the input loop until the player quits. Rendering happens
// after every event so the view always reflects current model state.
func (c *Controller) Run(ctx context.Context) error {
	c.running = true
	for c.running {
		c.renderer.Render(c.model, &c.dialog, c.message, c.showFullMap)

		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			c.handleKey(ev)
		case *tcell.EventResize:
			c.screen.Sync()
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}

func (c *Controller) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		c.running = false
		return
	}

	if c.model.Pending() != nil {
		c.handleDialogKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		c.running = false
	case tcell.KeyUp:
		c.move(maze.North)
	case tcell.KeyDown:
		c.move(maze.South)
	case tcell.KeyLeft:
		c.move(maze.West)
	case tcell.KeyRight:
		c.move(maze.East)
	case tcell.KeyRune:
		c.handleRune(ev.Rune())
	}
}

func (c *Controller) handleRune(r rune) {
	switch r {
	case 'w', 'W':
		c.move(maze.North)
	case 's', 'S':
		c.move(maze.South)
	case 'a', 'A':
		c.move(maze.West)
	case 'd', 'D':
		c.move(maze.East)
	case 'p', 'P':
		c.useItem(entity.HealingPotion)
	case 'v', 'V':
		c.useItem(entity.VisionPotion)
	case 'k', 'K':
		c.useItem(entity.MagicKey)
	case 'm', 'M', 'z', 'Z':
		c.showFullMap = !c.showFullMap
	case 'q', 'Q':
		c.running = false
	}
}

// handleDialogKey processes input while a trivia challenge is pending. The
// question kind decides how an answer is entered.
func (c *Controller) handleDialogKey(ev *tcell.EventKey) {
	q := c.model.Pending()

	if ev.Key() == tcell.KeyF1 {
		c.hint()
		return
	}

	switch q.Kind {
	case trivia.MultipleChoice:
		if ev.Key() != tcell.KeyRune {
			return
		}
		i := int(ev.Rune() - '1')
		if i >= 0 && i < len(q.Options) {
			c.answer(q.Options[i])
		}

	case trivia.TrueFalse:
		if ev.Key() != tcell.KeyRune {
			return
		}
		switch ev.Rune() {
		case 't', 'T', '1':
			c.answer("True")
		case 'f', 'F', '2':
			c.answer("False")
		}

	case trivia.ShortAnswer:
		switch ev.Key() {
		case tcell.KeyEnter:
			c.answer(c.dialog.Input)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(c.dialog.Input) > 0 {
				c.dialog.Input = c.dialog.Input[:len(c.dialog.Input)-1]
			}
		case tcell.KeyRune:
			c.dialog.Input += string(ev.Rune())
		}
	}
}

func (c *Controller) move(dir maze.Direction) {
	if err := c.model.Move(dir); err != nil {
		c.surfaceError(err)
		return
	}
	c.drainEvents()
}

func (c *Controller) answer(answer string) {
	c.dialog = ui.Dialog{}
	if err := c.model.Answer(answer); err != nil {
		c.surfaceError(err)
		return
	}
	c.drainEvents()
}

func (c *Controller) useItem(kind entity.ItemKind) {
	if err := c.model.UseItem(kind); err != nil {
		c.surfaceError(err)
		return
	}
	c.drainEvents()
}

func (c *Controller) hint() {
	hint, err := c.model.Hint()
	if err != nil {
		switch {
		case errors.Is(err, game.ErrItemNotHeld):
			c.dialog.Hint = "You have no suggestion potion."
		case errors.Is(err, game.ErrNotHintable):
			c.dialog.Hint = "No hint available for this question."
		default:
			c.surfaceError(err)
		}
		return
	}
	c.dialog.Hint = hint
}

// surfaceError turns recoverable model errors into user-visible messages.
// Terminal-state errors are quietly ignored per the error handling design.
func (c *Controller) surfaceError(err error) {
	switch {
	case errors.Is(err, game.ErrGameOver):
		// No-op: the outcome banner is already on screen.
	case errors.Is(err, game.ErrItemNotHeld):
		c.message = "You don't have that item."
	case errors.Is(err, game.ErrNoPendingQuestion):
		c.message = "There is no question to answer."
	default:
		c.log.Errorw("model operation failed", "err", err)
		c.message = "Something went wrong; see the log."
	}
}

// drainEvents converts model notifications into the message line.
func (c *Controller) drainEvents() {
	for _, e := range c.model.Events() {
		if text := eventText(e); text != "" {
			c.message = text
		}
	}
}

func eventText(e game.Event) string {
	switch e.Kind {
	case game.EventMoved:
		return ""
	case game.EventBlockedWall:
		return "You hit a wall. Try moving through a door."
	case game.EventBlockedPermLocked:
		return "This door is permanently locked. Find a magic key or another route."
	case game.EventChallenge:
		return "This door is locked. Answer the trivia question."
	case game.EventAnswerCorrect:
		return "Correct! The door swings open."
	case game.EventAnswerWrong:
		return "Wrong answer."
	case game.EventDoorPermLocked:
		return "Wrong answer. The door is now permanently locked."
	case game.EventAnswerDamage:
		return fmt.Sprintf("Wrong answer! You take %d damage.", e.Amount)
	case game.EventItemFound:
		return fmt.Sprintf("You found a %s!", e.Item.Name())
	case game.EventPitDamage:
		return fmt.Sprintf("You fell into a pit and took %d damage!", e.Amount)
	case game.EventHealed:
		return fmt.Sprintf("You recover %d hit points.", e.Amount)
	case game.EventVisionUsed:
		return "The surrounding rooms are revealed."
	case game.EventKeyUsed:
		return fmt.Sprintf("The magic key opens the %s door.", e.Direction)
	case game.EventKeyNoTarget:
		return "No permanently locked door nearby."
	case game.EventExitNeedsPillars:
		return "This is the exit, but you don't have all four pillars yet!"
	case game.EventWon:
		return "You reached the exit with all four pillars!"
	case game.EventLost:
		return "Your hit points are gone."
	default:
		return ""
	}
}
