package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	agent "github.com/mutablelogic/go-tinyagent/pkg/agent"
	openai "github.com/mutablelogic/go-tinyagent/pkg/openai"
	option "github.com/openai/openai-go/option"
	otel "go.opentelemetry.io/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCommand struct {
	Question []string `arg:"" optional:"" help:"Question to ask, read from standard input when omitted"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultQuestion = "What events do I have tomorrow?"
	tracerName      = "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) error {
	if strings.TrimSpace(ctx.OpenAIKey) == "" {
		return tinyagent.ErrConfig.With("API key missing; please set OPENAI_API_KEY")
	}

	// Create the agent
	agent, err := ctx.Agent()
	if err != nil {
		return err
	}

	// List the tools
	fmt.Fprintln(ctx.stdout, "Available tools:")
	for _, spec := range agent.Toolkit().Specs() {
		fmt.Fprintln(ctx.stdout, "-", spec.Name)
	}

	// Read the question
	question := strings.TrimSpace(strings.Join(cmd.Question, " "))
	if question == "" {
		fmt.Fprint(ctx.stdout, "\nEnter your question: ")
		if question, err = readLine(ctx.stdin); err != nil {
			return err
		}
	}
	if question == "" {
		question = defaultQuestion
	}

	// Run the agent
	fmt.Fprintln(ctx.stdout, "\nProcessing...")
	result, err := agent.Run(ctx.ctx, question)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.stdout, "\nResult:\n%s\n", result)

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Agent creates the model client and the agent for the toolkit
func (g *Globals) Agent() (*agent.Agent, error) {
	generator, err := openai.New(g.OpenAIKey, g.openaiOpts()...)
	if err != nil {
		return nil, err
	}

	agentOpts := []agent.Opt{
		agent.WithModel(g.Model),
		agent.WithLogger(g.log),
		agent.WithTracer(otel.Tracer(tracerName)),
	}
	if g.NoSummary {
		agentOpts = append(agentOpts, agent.WithoutSummary())
	}
	return agent.New(generator, g.toolkit, agentOpts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// openaiOpts returns the options for the model client. The request timeout
// is only set when --timeout is given.
func (g *Globals) openaiOpts() []option.RequestOption {
	opts := []option.RequestOption{}
	if g.OpenAIEndpoint != "" {
		opts = append(opts, openai.WithEndpoint(g.OpenAIEndpoint))
	}
	if g.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(g.Timeout))
	}
	return opts
}

// readLine returns one trimmed line, or an empty string at end of input
func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
