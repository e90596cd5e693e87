package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/envstruct"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/explorer"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/random"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/myrjola/detectivequest/internal/ui"
)

var ErrInvalidEcho = errors.NewSentinel("echo must be auto, always or never")

type config struct {
	Level    string `env:"DETECTIVE_LEVEL" envDefault:"mestre"`
	LogLevel string `env:"DETECTIVE_LOG_LEVEL" envDefault:"warn"`
	// Echo is auto, always or never. Auto echoes commands when stdin is not a terminal.
	Echo string `env:"DETECTIVE_ECHO" envDefault:"auto"`
}

type application struct {
	logger  *slog.Logger
	level   explorer.Level
	console *ui.Console
	in      io.Reader
}

// newRootCmd builds the detective-quest command. lookupEnv has the same signature as [os.LookupEnv].
func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var level, logLevel string

	rootCmd := &cobra.Command{
		Use:   "detective-quest",
		Short: "Explore the mansion, collect clues and find the most likely suspect",
		Long: `Detective Quest walks you through a mansion one room at a time.

Commands while exploring:
  e  go left        d  go right
  p  show clues     h  show suspects (mestre)
  s  leave the mansion

Levels: novato (walk only), aventureiro (collect clues), mestre (clues and suspects).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(lookupEnv)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				cfg.Level = level
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			app, err := newApplication(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return app.investigate(cmd.Context())
		},
	}
	rootCmd.Flags().StringVarP(&level, "level", "l", "mestre", "game level: novato, aventureiro or mestre")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "map",
		Short: "Show the layout of the mansion",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			ui.NewConsole(cmd.OutOrStdout(), false).Map(mansion.Build())
		},
	})

	return rootCmd
}

func loadConfig(lookupEnv func(string) (string, bool)) (config, error) {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return config{}, errors.Wrap(err, "populate config")
	}
	return cfg, nil
}

func newApplication(cfg config, in io.Reader, out, errOut io.Writer) (*application, error) {
	logLevel, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "configure logger")
	}
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(errOut, &slog.HandlerOptions{
		Level: logLevel,
	})))

	level, err := explorer.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "configure level")
	}

	var echo bool
	switch cfg.Echo {
	case "auto":
		echo = !isTerminal(in)
	case "always":
		echo = true
	case "never":
		echo = false
	default:
		return nil, errors.Wrap(ErrInvalidEcho, "configure echo", slog.String("echo", cfg.Echo))
	}

	return &application{
		logger:  logger,
		level:   level,
		console: ui.NewConsole(out, echo),
		in:      in,
	}, nil
}

// investigate plays one case from the entrance hall to the final summary.
func (app *application) investigate(ctx context.Context) error {
	caseID, err := random.CaseID()
	if err != nil {
		return errors.Wrap(err, "generate case ID")
	}
	ctx = logging.WithAttrs(ctx, slog.String("case", caseID), slog.String("level", app.level.String()))
	app.logger.LogAttrs(ctx, slog.LevelInfo, "investigation started")

	ledger := clues.New()
	index := suspects.New()
	detective := explorer.New(app.level, ledger, index, app.console, app.logger)

	app.console.Intro(app.level)
	result, err := detective.Explore(ctx, mansion.Build(), app.in)
	if err != nil {
		err = errors.Wrap(err, "explore mansion")
		app.logger.LogAttrs(ctx, slog.LevelError, "investigation aborted", errors.SlogError(err))
		return err
	}

	lead := index.MostAssociated()
	app.logger.LogAttrs(ctx, slog.LevelInfo, "investigation finished",
		slog.String("room", result.Room.Name()),
		slog.String("ending", result.Ending.String()),
		slog.Int("moves", result.Moves),
		slog.Int("clues", ledger.Len()),
		slog.Int("suspects", index.Len()),
		slog.String("lead", lead.Name))

	app.console.Summary(app.level, ledger.InOrder(), index.All(), lead)
	app.console.Farewell(app.level)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadDotEnv reads variables from .env in the working directory. The file is optional.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load .env")
	}
	return nil
}

func main() {
	if err := loadDotEnv(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(os.LookupEnv).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
