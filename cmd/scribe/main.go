// Command scribe writes articles in the author's voice with the configured LLM provider.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/casualjim/scribe/internal/store"
	"github.com/casualjim/scribe/pkg/slogx"
	"github.com/casualjim/scribe/provider"
	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	level := slog.LevelWarn
	if os.Getenv("SCRIBE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: level}),
	))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	path := os.Getenv("SCRIBE_SETTINGS")
	if path == "" {
		var err error
		if path, err = store.DefaultPath(); err != nil {
			slog.Error("failed to locate settings", slogx.Error(err))
			os.Exit(1)
		}
	}

	app := &App{Stdout: os.Stdout, Stderr: os.Stderr, SettingsPath: path}
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		reportError(app, err)
		os.Exit(1)
	}
}

func reportError(app *App, err error) {
	var credErr *provider.CredentialError
	if errors.As(err, &credErr) {
		fmt.Fprintf(app.Stderr, "%s %s\n", color.RedString("error:"), err)
		fmt.Fprintf(app.Stderr, "%s scribe key %s <api-key>  (or export %s)\n",
			color.YellowString("set API key:"), credErr.Provider, envHint(credErr.Provider))
		return
	}
	fmt.Fprintf(app.Stderr, "%s %s\n", color.RedString("error:"), err)
}

func envHint(providerName string) string {
	return strings.ToUpper(providerName) + "_API_KEY"
}
