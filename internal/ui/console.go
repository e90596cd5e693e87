// Package ui renders the investigation to the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/myrjola/detectivequest/internal/explorer"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
)

// Mansion palette: candle light on dark wood.
var (
	ColorCandle = lipgloss.Color("#F4D03F")
	ColorBrass  = lipgloss.Color("#C9A227")
	ColorOak    = lipgloss.Color("#8E6E53")
	ColorAsh    = lipgloss.Color("#7F8C8D")
	ColorBlood  = lipgloss.Color("#E74C3C")
	ColorIvy    = lipgloss.Color("#2ECC71")
)

type Icon string

const (
	IconClue    Icon = "🧩"
	IconSuspect Icon = "👤"
	IconLead    Icon = "🕵️"
)

type styles struct {
	title   lipgloss.Style
	room    lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	clue    lipgloss.Style
	suspect lipgloss.Style
	lead    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(ColorCandle),
		room:    r.NewStyle().Bold(true).Foreground(ColorBrass),
		muted:   r.NewStyle().Foreground(ColorAsh),
		warning: r.NewStyle().Foreground(ColorCandle),
		err:     r.NewStyle().Foreground(ColorBlood),
		clue:    r.NewStyle().Foreground(ColorIvy),
		suspect: r.NewStyle().Bold(true).Foreground(ColorOak),
		lead:    r.NewStyle().Bold(true).Foreground(ColorBlood),
	}
}

var _ explorer.Renderer = (*Console)(nil)

// Console writes the investigation as line-oriented text. Colors are only used when out is a terminal.
type Console struct {
	out    io.Writer
	styles styles
	echo   bool
}

// NewConsole creates a console writing to out. With echo set, every command read is written back, which keeps
// transcripts readable when commands come from a pipe.
func NewConsole(out io.Writer, echo bool) *Console {
	return &Console{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
		echo:   echo,
	}
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

var intros = map[explorer.Level][]string{
	explorer.Novice:     {"=== Detective Quest: Exploração da Mansão ==="},
	explorer.Adventurer: {"=== Detective Quest: A Mansão Misteriosa ===", "Explore os cômodos e colete pistas!"},
	explorer.Master:     {"=== Detective Quest: Nível Mestre ===", "Explore, colete pistas e relacione suspeitos."},
}

// Intro greets the player.
func (c *Console) Intro(level explorer.Level) {
	lines := intros[level]
	if len(lines) == 0 {
		return
	}
	c.println(c.styles.title.Render(lines[0]))
	for _, line := range lines[1:] {
		c.println(line)
	}
}

func (c *Console) Room(name string) {
	c.printf("\nVocê está na: %s\n", c.styles.room.Render(name))
}

func (c *Console) DeadEnd() {
	c.println(c.styles.muted.Render("Não há mais saídas. Fim da exploração!"))
}

var commandLabels = map[explorer.Command]string{
	explorer.MoveLeft:     "esquerda",
	explorer.MoveRight:    "direita",
	explorer.ShowClues:    "ver pistas",
	explorer.ShowSuspects: "ver suspeitos",
	explorer.Quit:         "sair",
}

// Prompt asks for a command without ending the line.
func (c *Console) Prompt(level explorer.Level) {
	commands := level.Commands()
	options := make([]string, len(commands))
	for i, cmd := range commands {
		options[i] = fmt.Sprintf("(%c) %s", cmd, commandLabels[cmd])
	}
	c.printf("Deseja ir para %s? ", joinAlternatives(options))
}

func (c *Console) Echo(input rune) {
	if !c.echo {
		return
	}
	c.println(string(input))
}

func (c *Console) NoExit(side explorer.Side) {
	direction := "esquerda"
	if side == explorer.Right {
		direction = "direita"
	}
	c.println(c.styles.warning.Render(fmt.Sprintf("Não há sala à %s!", direction)))
}

func (c *Console) Clues(texts []string, level explorer.Level) {
	c.println()
	c.println(c.styles.title.Render("=== Pistas Coletadas ==="))
	if len(texts) == 0 {
		empty := "(Nenhuma pista encontrada ainda)"
		if !level.TracksSuspects() {
			empty = "(Nenhuma pista encontrada ainda.)"
		}
		c.println(c.styles.muted.Render(empty))
		return
	}
	c.clueList(texts)
}

func (c *Console) clueList(texts []string) {
	for _, text := range texts {
		c.printf("%s %s\n", IconClue, c.styles.clue.Render(text))
	}
}

func (c *Console) Suspects(all []models.Suspect) {
	c.println()
	c.println(c.styles.title.Render("=== Relação de Suspeitos e Pistas ==="))
	if len(all) == 0 {
		c.println(c.styles.muted.Render("(Nenhum suspeito registrado ainda)"))
		return
	}
	for _, suspect := range all {
		c.printf("\n%s Suspeito: %s\n", IconSuspect, c.styles.suspect.Render(suspect.Name))
		if len(suspect.Clues) == 0 {
			c.println(c.styles.muted.Render("   (nenhuma pista associada)"))
		}
		for _, clue := range suspect.Clues {
			c.printf("   - %s\n", clue)
		}
	}
}

func (c *Console) InvalidCommand(_ rune, level explorer.Level) {
	commands := level.Commands()
	quoted := make([]string, len(commands))
	for i, cmd := range commands {
		quoted[i] = fmt.Sprintf("'%c'", cmd)
	}
	c.println(c.styles.err.Render(fmt.Sprintf("Opção inválida! Use %s.", joinAlternatives(quoted))))
}

func (c *Console) Leave() {
	c.println("Saindo da mansão...")
}

// Summary is the final case review: collected clues for levels that collect them and, at the master level, the
// suspects and the most likely one.
func (c *Console) Summary(level explorer.Level, texts []string, all []models.Suspect, lead models.Lead) {
	if !level.CollectsClues() {
		return
	}

	c.println()
	if level.TracksSuspects() {
		c.println(c.styles.title.Render("=== Revisão Final das Pistas (ordem alfabética) ==="))
	} else {
		c.println(c.styles.title.Render("=== Revisão Final das Pistas ==="))
	}
	switch {
	case len(texts) > 0:
		c.clueList(texts)
	case level.TracksSuspects():
		c.println(c.styles.muted.Render("(Nenhuma pista coletada)"))
	default:
		c.println(c.styles.muted.Render("(Você não encontrou nenhuma pista...)"))
	}

	if !level.TracksSuspects() {
		return
	}
	c.Suspects(all)
	c.printf("\n%s Suspeito mais provável: %s (%d pistas associadas)\n",
		IconLead, c.styles.lead.Render(lead.Name), lead.Count)
}

// Farewell closes the case.
func (c *Console) Farewell(level explorer.Level) {
	if level.TracksSuspects() {
		c.println("\nCaso encerrado! 🕵️‍♀️")
		return
	}
	c.println("\nAté a próxima investigação!")
}

// Map draws the mansion as an indented tree. Dead ends are marked.
func (c *Console) Map(root *mansion.Room) {
	c.println(c.styles.title.Render("=== Mapa da Mansão ==="))
	mansion.Walk(root, func(room *mansion.Room, depth int) {
		line := strings.Repeat("  ", depth) + "• " + c.styles.room.Render(room.Name())
		if room.IsLeaf() {
			line += c.styles.muted.Render(" (sem saída)")
		}
		c.println(line)
	})
}

// joinAlternatives joins items the Portuguese way: "a, b ou c".
func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " ou " + items[len(items)-1]
	}
}
