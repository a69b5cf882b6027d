package main

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	table "github.com/jedib0t/go-pretty/v6/table"
	tinyagent "github.com/mutablelogic/go-tinyagent"
	agent "github.com/mutablelogic/go-tinyagent/pkg/agent"
	schema "github.com/mutablelogic/go-tinyagent/pkg/schema"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolCommands struct {
	ListTools ListToolsCommand `cmd:"" name:"tools" help:"List available tools." group:"TOOL"`
	ToolInfo  ToolInfoCommand  `cmd:"" name:"tool" help:"Show detailed information about a tool." group:"TOOL"`
	RunTool   RunToolCommand   `cmd:"" name:"run" help:"Run a tool with JSON input, without the model." group:"TOOL"`
}

type ListToolsCommand struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type ToolInfoCommand struct {
	Name string `arg:"" name:"name" help:"Tool name"`
}

type RunToolCommand struct {
	Name  string `arg:"" name:"name" help:"Tool name"`
	Input string `arg:"" name:"input" optional:"" help:"JSON input for the tool (optional)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCommand) Run(ctx *Globals) error {
	specs := ctx.toolkit.Specs()

	// Output as JSON
	if cmd.JSON {
		return printJSON(ctx, specs)
	}

	// Output as a table
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Name", "Description", "Parameters"})
	for _, spec := range specs {
		tw.AppendRow(table.Row{spec.Name, spec.Description, parameters(spec)})
	}
	fmt.Fprintln(ctx.stdout, tw.Render())
	return nil
}

func (cmd *ToolInfoCommand) Run(ctx *Globals) error {
	t := ctx.toolkit.Lookup(cmd.Name)
	if t == nil {
		return tinyagent.ErrNotFound.With(cmd.Name)
	}
	spec, err := tool.Spec(t)
	if err != nil {
		return err
	}
	return printJSON(ctx, spec)
}

func (cmd *RunToolCommand) Run(ctx *Globals) error {
	input := json.RawMessage(strings.TrimSpace(cmd.Input))
	if len(input) > 0 && !json.Valid(input) {
		return tinyagent.ErrBadParameter.With("input is not valid JSON")
	}
	result, err := ctx.toolkit.Run(ctx.ctx, cmd.Name, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.stdout, agent.Stringify(result))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func printJSON(ctx *Globals, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.stdout, string(data))
	return nil
}

// parameters lists the parameter names, marking required ones with *
func parameters(spec schema.ToolSpec) string {
	required := make(map[string]bool)
	for _, name := range spec.Required() {
		required[name] = true
	}
	result := make([]string, 0, len(required))
	for _, name := range spec.ParameterNames() {
		if required[name] {
			name += "*"
		}
		result = append(result, name)
	}
	return strings.Join(result, " ")
}
