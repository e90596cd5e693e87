// Package explorer runs the walk through the mansion. Entering a trigger room files its clue in the clue ledger and
// its suspects in the suspect index; everything the player sees goes through a [Renderer].
package explorer

import (
	"context"
	"io"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/suspects"
)

// Side names the exit the player tried to take.
type Side int

const (
	Left Side = iota
	Right
)

// Renderer shows the exploration to the player.
type Renderer interface {
	// Room is called every time the player is asked for a command and once more on a dead end.
	Room(name string)
	DeadEnd()
	Prompt(level Level)
	// Echo repeats the command that was read.
	Echo(input rune)
	NoExit(side Side)
	Clues(texts []string, level Level)
	Suspects(all []models.Suspect)
	InvalidCommand(input rune, level Level)
	Leave()
}

// Ending tells why the exploration stopped.
type Ending int

const (
	// EndingDeadEnd means the player reached a room without exits.
	EndingDeadEnd Ending = iota
	// EndingQuit means the player chose to leave.
	EndingQuit
	// EndingInputClosed means the input ran out before the player left.
	EndingInputClosed
	// EndingAborted means the context was done or the input failed. Explore returns an error with it.
	EndingAborted
)

func (e Ending) String() string {
	switch e {
	case EndingDeadEnd:
		return "dead end"
	case EndingQuit:
		return "quit"
	case EndingInputClosed:
		return "input closed"
	case EndingAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result describes where and how the exploration ended.
type Result struct {
	Room   *mansion.Room
	Ending Ending
	// Moves counts the rooms entered after the starting room.
	Moves int
}

// Explorer walks one player through the mansion.
type Explorer struct {
	level  Level
	rules  Rules
	ledger *clues.Ledger
	index  *suspects.Index
	view   Renderer
	logger *slog.Logger
}

// New creates an explorer playing level. The ledger and index are filled while exploring and stay owned by the
// caller, who reads them once the exploration is over.
func New(level Level, ledger *clues.Ledger, index *suspects.Index, view Renderer, logger *slog.Logger) *Explorer {
	return &Explorer{
		level:  level,
		rules:  RulesFor(level),
		ledger: ledger,
		index:  index,
		view:   view,
		logger: logger.With("source", "Explorer"),
	}
}

// Explore walks from start, reading commands from input until the player quits, reaches a dead end or the input ends.
// An error is returned only when input cannot be read or ctx is done.
func (e *Explorer) Explore(ctx context.Context, start *mansion.Room, input io.Reader) (Result, error) {
	var (
		commands = NewCommandReader(input)
		room     = start
		entered  = true
		moves    int
	)

	for {
		if err := ctx.Err(); err != nil {
			return Result{Room: room, Ending: EndingAborted, Moves: moves},
				errors.Wrap(err, "explore", slog.String("room", room.Name()))
		}

		e.view.Room(room.Name())
		if entered {
			e.discover(ctx, room)
			entered = false
		}

		if room.IsLeaf() {
			e.view.DeadEnd()
			return Result{Room: room, Ending: EndingDeadEnd, Moves: moves}, nil
		}

		e.view.Prompt(e.level)
		typed, err := commands.Next()
		if errors.Is(err, io.EOF) {
			e.logger.LogAttrs(ctx, slog.LevelInfo, "input closed", slog.String("room", room.Name()))
			e.view.Leave()
			return Result{Room: room, Ending: EndingInputClosed, Moves: moves}, nil
		}
		if err != nil {
			return Result{Room: room, Ending: EndingAborted, Moves: moves},
				errors.Wrap(err, "read command", slog.String("room", room.Name()))
		}
		e.view.Echo(typed)

		cmd := ParseCommand(typed)
		if !e.level.Accepts(cmd) {
			e.logger.LogAttrs(ctx, slog.LevelDebug, "invalid command",
				slog.String("input", string(typed)), slog.String("room", room.Name()))
			e.view.InvalidCommand(typed, e.level)
			continue
		}

		switch cmd {
		case MoveLeft:
			if next := room.Left(); next != nil {
				room, entered = next, true
				moves++
			} else {
				e.view.NoExit(Left)
			}
		case MoveRight:
			if next := room.Right(); next != nil {
				room, entered = next, true
				moves++
			} else {
				e.view.NoExit(Right)
			}
		case ShowClues:
			e.view.Clues(e.ledger.InOrder(), e.level)
		case ShowSuspects:
			e.view.Suspects(e.index.All())
		case Quit:
			e.view.Leave()
			return Result{Room: room, Ending: EndingQuit, Moves: moves}, nil
		}
	}
}

// discover files what the room reveals. Rooms without a rule reveal nothing.
func (e *Explorer) discover(ctx context.Context, room *mansion.Room) {
	discovery, ok := e.rules[room.Name()]
	if !ok {
		return
	}

	if discovery.Clue != "" {
		added := e.ledger.Insert(discovery.Clue)
		e.logger.LogAttrs(ctx, slog.LevelDebug, "clue found",
			slog.String("room", room.Name()),
			slog.String("clue", discovery.Clue),
			slog.Bool("new", added))
	}

	for _, association := range discovery.Associations {
		e.index.Associate(association.Suspect, association.Clue)
		e.logger.LogAttrs(ctx, slog.LevelDebug, "suspect associated",
			slog.String("room", room.Name()),
			slog.String("suspect", association.Suspect),
			slog.String("clue", association.Clue))
	}
}
