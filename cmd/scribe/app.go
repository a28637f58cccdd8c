package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/casualjim/scribe"
	"github.com/casualjim/scribe/article"
	"github.com/casualjim/scribe/internal/settings"
	"github.com/casualjim/scribe/internal/store"
	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/pkg/uuidx"
	"github.com/casualjim/scribe/prompt"
	"github.com/casualjim/scribe/provider/models"
	"github.com/fatih/color"
	"github.com/fogfish/opts"
	"github.com/k0kubun/pp/v3"
)

const usage = `usage: scribe <command> [arguments]

commands:
  write [-render] [-i instructions] <topic>   generate and save an article
  revise [-render] <article-id> <instruction> rework a saved article
  list                                        list saved articles
  show [-render] <article-id>                 print a saved article
  key <provider> <api-key>                    store an API key ("" removes it)
  model [name]                                show or set the model
  models                                      list known models
  memory <text>                               remember a fact about the author
  example [-title title] <file>               add a writing sample
  config                                      print the settings, keys redacted
`

var errUsage = errors.New("invalid usage")

// App runs one CLI command against the settings file.
type App struct {
	Stdout       io.Writer
	Stderr       io.Writer
	SettingsPath string
	// Options are applied after the ones derived from settings.
	Options []opts.Option[scribe.Aggregator]
}

// Run dispatches args[0] to its command.
func (app *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(app.Stderr, usage)
		return errUsage
	}

	st, err := store.Open(app.SettingsPath)
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "write":
		return app.write(ctx, st, rest)
	case "revise":
		return app.revise(ctx, st, rest)
	case "list":
		return app.list(st)
	case "show":
		return app.show(st, rest)
	case "key":
		return app.key(st, rest)
	case "model":
		return app.model(st, rest)
	case "models":
		return app.models(st)
	case "memory":
		return app.memory(st, rest)
	case "example":
		return app.example(st, rest)
	case "config":
		return app.config(st)
	case "help", "-h", "--help":
		fmt.Fprint(app.Stdout, usage)
		return nil
	default:
		fmt.Fprint(app.Stderr, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (app *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(app.Stderr)
	return fs
}

func (app *App) aggregator(st *store.Store) (*scribe.Aggregator, error) {
	cfg, err := settings.Load(st)
	if err != nil {
		return nil, err
	}
	return scribe.New(append(cfg.Options(), app.Options...)...)
}

func (app *App) write(ctx context.Context, st *store.Store, args []string) error {
	fs := app.flags("write")
	render := fs.Bool("render", false, "render the result as markdown instead of streaming raw text")
	instructions := fs.String("i", "", "extra instructions such as audience or length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	topic := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if topic == "" {
		return fmt.Errorf("%w: write needs a topic", errUsage)
	}

	agg, err := app.aggregator(st)
	if err != nil {
		return err
	}
	text, genErr := app.generate(ctx, agg, []messages.Turn{article.Request(topic, *instructions)}, *render)
	if text == "" {
		return genErr
	}

	a := article.New(topic, agg.Model(), text)
	if err := app.persist(st, a); err != nil {
		return errors.Join(genErr, err)
	}
	return genErr
}

func (app *App) revise(ctx context.Context, st *store.Store, args []string) error {
	fs := app.flags("revise")
	render := fs.Bool("render", false, "render the result as markdown instead of streaming raw text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: revise needs an article id and an instruction", errUsage)
	}
	a, err := settings.FindArticle(st, fs.Arg(0))
	if err != nil {
		return err
	}

	agg, err := app.aggregator(st)
	if err != nil {
		return err
	}
	instruction := strings.Join(fs.Args()[1:], " ")
	text, genErr := app.generate(ctx, agg, article.Revision(a, instruction), *render)
	if text == "" {
		return genErr
	}
	if err := app.persist(st, a.Revise(agg.Model(), text)); err != nil {
		return errors.Join(genErr, err)
	}
	return genErr
}

func (app *App) generate(ctx context.Context, agg *scribe.Aggregator, turns []messages.Turn, render bool) (string, error) {
	stream, err := agg.Generate(ctx, turns)
	if err != nil {
		return "", err
	}

	out := app.Stdout
	if render {
		out = io.Discard
		fmt.Fprintln(app.Stderr, color.CyanString("writing with %s...", agg.Model()))
	}
	text, err := streamTo(out, agg.Model(), stream)
	if render && text != "" {
		if rerr := renderMarkdown(app.Stdout, text); rerr != nil {
			fmt.Fprintln(app.Stdout, text)
		}
	}
	return text, err
}

func (app *App) persist(st *store.Store, a article.Article) error {
	if err := settings.SaveArticle(st, a); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.Stderr, "%s %s\n", color.GreenString("saved"), uuidx.Short(a.ID))
	return nil
}

func (app *App) list(st *store.Store) error {
	articles, err := settings.Articles(st)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		fmt.Fprintln(app.Stdout, "no articles yet, try: scribe write <topic>")
		return nil
	}
	for _, a := range articles {
		printArticleLine(app.Stdout, a)
	}
	return nil
}

func (app *App) show(st *store.Store, args []string) error {
	fs := app.flags("show")
	render := fs.Bool("render", false, "render as markdown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: show needs an article id", errUsage)
	}
	a, err := settings.FindArticle(st, fs.Arg(0))
	if err != nil {
		return err
	}
	if *render {
		return renderMarkdown(app.Stdout, a.Content)
	}
	fmt.Fprintln(app.Stdout, a.Content)
	return nil
}

func (app *App) key(st *store.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: key needs a provider and an API key", errUsage)
	}
	id := models.ProviderID(strings.ToLower(args[0]))
	if err := settings.SetAPIKey(st, id, args[1]); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "%s API key for %s\n", color.GreenString("updated"), id)
	return nil
}

func (app *App) model(st *store.Store, args []string) error {
	if len(args) == 0 {
		cfg, err := settings.Load(st)
		if err != nil {
			return err
		}
		b := models.Resolve(cfg.Model)
		fmt.Fprintf(app.Stdout, "%s (%s/%s)\n", cfg.Model, b.Provider, b.Model)
		return nil
	}
	name := strings.TrimSpace(args[0])
	if _, ok := models.Lookup(name); !ok {
		d := models.Default
		fmt.Fprintf(app.Stderr, "%s %q is not a known model, %s/%s will be used\n",
			color.YellowString("warning:"), name, d.Provider, d.Model)
	}
	if err := settings.SetModel(st, name); err != nil {
		return err
	}
	return st.Save()
}

func (app *App) models(st *store.Store) error {
	cfg, err := settings.Load(st)
	if err != nil {
		return err
	}
	for _, name := range models.Names() {
		b, _ := models.Lookup(name)
		marker := " "
		if name == cfg.Model {
			marker = color.GreenString("*")
		}
		configured := ""
		if cfg.Credentials.Get(b.Provider) == "" {
			configured = color.YellowString(" (no key)")
		}
		fmt.Fprintf(app.Stdout, "%s %-24s %s%s\n", marker, name, b.Provider, configured)
	}
	return nil
}

func (app *App) memory(st *store.Store, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("%w: memory needs some text", errUsage)
	}
	if err := settings.AddMemory(st, prompt.NewMemory(text)); err != nil {
		return err
	}
	return st.Save()
}

func (app *App) example(st *store.Store, args []string) error {
	fs := app.flags("example")
	title := fs.String("title", "", "title of the sample, defaults to the file name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: example needs a file", errUsage)
	}
	content, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if *title == "" {
		*title = strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
	}
	if err := settings.AddWritingExample(st, prompt.NewWritingExample(*title, string(content))); err != nil {
		return err
	}
	return st.Save()
}

func (app *App) config(st *store.Store) error {
	cfg, err := settings.Load(st)
	if err != nil {
		return err
	}
	printer := pp.New()
	printer.SetOutput(app.Stdout)
	printer.SetColoringEnabled(false)
	_, err = printer.Println(cfg.Redacted())
	return err
}
