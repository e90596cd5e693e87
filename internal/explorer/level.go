package explorer

import (
	"log/slog"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

var ErrUnknownLevel = errors.NewSentinel("unknown level")

// Level selects how much of the investigation is played. Every level adds to the one before it.
type Level int

const (
	// Novice only walks the mansion.
	Novice Level = iota
	// Adventurer collects clues.
	Adventurer
	// Master also relates clues to suspects.
	Master
)

var levelNames = map[Level]string{
	Novice:     "novato",
	Adventurer: "aventureiro",
	Master:     "mestre",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "desconhecido"
}

// ParseLevel accepts the level names novato, aventureiro and mestre in any case.
func ParseLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == normalized {
			return level, nil
		}
	}
	return Novice, errors.Wrap(ErrUnknownLevel, "parse level", slog.String("level", name))
}

func (l Level) CollectsClues() bool {
	return l >= Adventurer
}

func (l Level) TracksSuspects() bool {
	return l >= Master
}

// Commands lists the commands accepted at this level in prompt order.
func (l Level) Commands() []Command {
	commands := []Command{MoveLeft, MoveRight}
	if l.CollectsClues() {
		commands = append(commands, ShowClues)
	}
	if l.TracksSuspects() {
		commands = append(commands, ShowSuspects)
	}
	return append(commands, Quit)
}

// Accepts reports whether cmd is available at this level.
func (l Level) Accepts(cmd Command) bool {
	for _, c := range l.Commands() {
		if c == cmd {
			return true
		}
	}
	return false
}
