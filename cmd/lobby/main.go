package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	httpadapter "github.com/dkeye/Waterdeep/internal/adapters/http"
	"github.com/dkeye/Waterdeep/internal/adapters/render"
	"github.com/dkeye/Waterdeep/internal/adapters/term"
	"github.com/dkeye/Waterdeep/internal/app"
	"github.com/dkeye/Waterdeep/internal/config"
	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/view"
)

const usage = `usage: lobby [flags] [list | join <game-id>]

  list            show the games in progress (default)
  join <game-id>  ask for a name and color and join the game
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("lobby failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := config.Flags("lobby")
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setLogLevel(cfg)

	client, err := httpadapter.NewClient(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return err
	}
	policy, err := app.PolicyByName(cfg.ColorPolicy)
	if err != nil {
		return err
	}

	provider := app.NewGamesProvider(client, cfg.GamesPath)
	joins := httpadapter.NewJoinClient(client, cfg.GamesPath)
	dialog := term.NewDialog(stdin, os.Stderr)

	list := view.NewGameList(nil, func() *app.JoinWorkflow {
		return app.NewJoinWorkflow(dialog, joins, policy)
	})
	unbind := list.Bind(provider.Games())
	defer unbind()

	res := <-provider.Games().LoadGamesAsync(ctx)
	if res.Err != nil {
		return fmt.Errorf("load games: %w", res.Err)
	}

	switch cmd := fs.Arg(0); cmd {
	case "", "list":
		return renderList(ctx, cfg, list, stdout)
	case "join":
		if fs.NArg() != 2 {
			return errors.New("join needs exactly one game id")
		}
		return joinGame(ctx, list, fs.Arg(1), stdout)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func setLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping info")
		level = zerolog.InfoLevel
	}
	if cfg.Mode == "debug" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

func renderList(ctx context.Context, cfg *config.Config, list *view.GameList, stdout io.Writer) error {
	var r core.Renderer = render.Text{}
	w := stdout
	if cfg.Render == "html" {
		r = render.HTML{}
		if cfg.HTMLOut != "" {
			f, err := os.Create(cfg.HTMLOut)
			if err != nil {
				return fmt.Errorf("create html output: %w", err)
			}
			defer f.Close()
			w = f
		}
	}
	if err := list.Render(ctx, w, r); err != nil {
		return fmt.Errorf("render games: %w", err)
	}
	return nil
}

func joinGame(ctx context.Context, list *view.GameList, gameID string, stdout io.Writer) error {
	button, ok := list.Button(gameID)
	if !ok {
		return fmt.Errorf("no game %q in the lobby", gameID)
	}
	if err := button.Click(ctx); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "join of %s finished\n", button.Game().Name)
	return nil
}
