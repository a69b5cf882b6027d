package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
	version "github.com/mutablelogic/go-tinyagent/pkg/version"
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool             `name:"debug" help:"Enable debug output"`
	Verbose bool             `name:"verbose" help:"Trace connector requests"`
	Timeout time.Duration    `name:"timeout" help:"Timeout for each request, unset for the HTTP client default"`
	Version kong.VersionFlag `name:"version" help:"Print version information and exit"`

	// Model
	OpenAIKey      string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIEndpoint string `name:"openai-endpoint" env:"OPENAI_BASE_URL" help:"Endpoint for an OpenAI-compatible API"`
	Model          string `name:"model" env:"TINYAGENT_MODEL" default:"gpt-4o-mini" help:"Model name"`
	NoSummary      bool   `name:"no-summary" help:"Return raw tool results without summarizing"`

	// Connectors
	YNABToken string `name:"ynab-token" env:"YNAB_TOKEN" help:"YNAB personal access token"`
	Data      string `name:"data" env:"TINYAGENT_DATA" default:"mem" help:"Directory for local data collections"`
	Calendar  string `name:"calendar" env:"TINYAGENT_CALENDAR" help:"Calendar events file (default calendar.yaml in the data directory)"`

	// Context
	ctx     context.Context
	log     zerolog.Logger
	stdin   io.Reader
	stdout  io.Writer
	toolkit *tool.Toolkit
}

type CLI struct {
	Globals

	// Commands
	Ask   AskCommand `cmd:"" default:"withargs" help:"Ask a question (default command)."`
	Tools ToolCommands `embed:""`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	name := execName()
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("A minimal tool-calling agent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version": version.New(name).String(),
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Set up the logger and toolkit
	cmd.FatalIfErrorf(cli.Globals.init(ctx, os.Stdin, os.Stdout, os.Stderr))

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// init creates the logger and loads the toolkit. Providers which fail to
// load are logged and skipped.
func (g *Globals) init(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	g.ctx = ctx
	g.stdin = stdin
	g.stdout = stdout

	// Logger
	level := zerolog.InfoLevel
	if g.Debug {
		level = zerolog.DebugLevel
	}
	g.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	// Toolkit
	toolkit, err := tool.NewToolkit()
	if err != nil {
		return err
	}
	for _, err := range loadErrors(toolkit.Load(g.providers()...)) {
		g.log.Error().Err(err.Err).Str("provider", err.Provider).Msg("unable to load tools")
	}
	g.toolkit = toolkit

	// Return success
	return nil
}
