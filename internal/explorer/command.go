package explorer

import (
	"bufio"
	"io"
	"unicode"
)

// Command is a single-letter order given by the player.
type Command rune

const (
	MoveLeft     Command = 'e'
	MoveRight    Command = 'd'
	ShowClues    Command = 'p'
	ShowSuspects Command = 'h'
	Quit         Command = 's'
)

// ParseCommand maps player input to a command. Letters are case-insensitive.
func ParseCommand(input rune) Command {
	return Command(unicode.ToLower(input))
}

// CommandReader reads one command at a time. Whitespace, including line breaks, separates commands and is skipped,
// so "ed" on a single line is read as two commands.
type CommandReader struct {
	r *bufio.Reader
}

func NewCommandReader(r io.Reader) *CommandReader {
	return &CommandReader{r: bufio.NewReader(r)}
}

// Next returns the next non-space rune. It returns io.EOF once the input is exhausted.
func (cr *CommandReader) Next() (rune, error) {
	for {
		r, _, err := cr.r.ReadRune()
		if err != nil {
			return 0, err //nolint:wrapcheck // io.EOF must reach the caller unwrapped
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}
