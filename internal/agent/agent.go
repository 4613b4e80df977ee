// Package agent routes natural-language queries to chain operations. A model
// picks exactly one tool per query; the tool runs the operation and renders a
// plain-text reply. Operation failures still produce a reply so the caller
// always has something to show, while transport and routing failures surface
// as errors.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"orgnet/internal/infrastructure/llm"
)

const systemPrompt = "You are an operations assistant for an HR system backed by a blockchain. " +
	"Route every request to exactly one tool. Dates use YYYY-MM-DD, task deadlines use " +
	"YYYY-MM-DD HH:MM:SS, payment amounts are whole numbers of wei, and addresses start with 0x."

// Completer produces one chat completion. Satisfied by *llm.Client.
type Completer interface {
	Complete(ctx context.Context, system, user string, tools []llm.ToolDefinition) (*llm.Completion, error)
}

// Handler executes one tool call. A non-empty result is delivered to the
// caller even when err is non-nil; err marks the operation as failed for
// logging.
type Handler func(ctx context.Context, args Arguments) (string, error)

// Tool is one entry in the dispatcher's catalog.
type Tool struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Handler     Handler
}

// Result is the outcome of a dispatched query.
type Result struct {
	Tool   string `json:"tool_called"`
	Result string `json:"result"`
}

// Dispatcher sends queries to the model along with the tool catalog and runs
// whichever tool the model selects.
type Dispatcher struct {
	completer Completer
	tools     []Tool
	byName    map[string]int
	defs      []llm.ToolDefinition
}

// NewDispatcher validates the catalog and builds the dispatcher.
func NewDispatcher(completer Completer, tools []Tool) (*Dispatcher, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if len(tools) == 0 {
		return nil, errors.New("at least one tool is required")
	}
	d := &Dispatcher{
		completer: completer,
		tools:     tools,
		byName:    make(map[string]int, len(tools)),
		defs:      make([]llm.ToolDefinition, len(tools)),
	}
	for i, tool := range tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("tool %d has no name", i)
		}
		if tool.Handler == nil {
			return nil, fmt.Errorf("tool %s has no handler", tool.Name)
		}
		if _, dup := d.byName[tool.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %s", tool.Name)
		}
		d.byName[tool.Name] = i
		d.defs[i] = llm.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Schema,
		}
	}
	return d, nil
}

// Tools returns the catalog in registration order.
func (d *Dispatcher) Tools() []Tool {
	out := make([]Tool, len(d.tools))
	copy(out, d.tools)
	return out
}

// Dispatch asks the model to pick a tool for the query and runs it. An error
// return means the query could not be routed at all; a failed operation
// returns its rendered failure text with a nil error.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, errors.New("query is empty")
	}

	completion, err := d.completer.Complete(ctx, systemPrompt, query, d.defs)
	if err != nil {
		return Result{}, fmt.Errorf("model call: %w", err)
	}
	call := completion.ToolCall
	if call == nil {
		if completion.Content != "" {
			return Result{}, fmt.Errorf("model selected no tool: %s", completion.Content)
		}
		return Result{}, errors.New("model selected no tool")
	}
	idx, ok := d.byName[call.Name]
	if !ok {
		return Result{}, fmt.Errorf("model selected unknown tool %q", call.Name)
	}
	tool := d.tools[idx]

	args, err := parseArguments(call.Arguments)
	if err != nil {
		return Result{}, fmt.Errorf("tool %s arguments: %w", tool.Name, err)
	}

	slog.Debug("dispatching tool", "tool", tool.Name)
	result, err := tool.Handler(ctx, args)
	if err != nil {
		slog.Error("tool failed", "tool", tool.Name, "error", err)
		if result == "" {
			return Result{}, fmt.Errorf("tool %s: %w", tool.Name, err)
		}
	}
	return Result{Tool: tool.Name, Result: result}, nil
}

// Arguments holds a tool call's decoded argument object. Accessors tolerate
// the model sending numbers as strings and vice versa.
type Arguments map[string]json.RawMessage

func parseArguments(raw string) (Arguments, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Arguments{}, nil
	}
	var args Arguments
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = Arguments{}
	}
	return args, nil
}

// String returns the named argument rendered as a string. Numbers and bools
// are converted; missing keys and other shapes yield "".
func (a Arguments) String(key string) string {
	raw, ok := a[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// Uint returns the named argument as an unsigned integer. It accepts JSON
// numbers, numeric strings, and integral floats.
func (a Arguments) Uint(key string) (uint64, bool) {
	raw, ok := a[key]
	if !ok {
		return 0, false
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil && f >= 0 && f < math.MaxUint64 && f == math.Trunc(f) {
		return uint64(f), true
	}
	return 0, false
}

// Bool returns the named argument as a bool, accepting "true"/"false" strings.
func (a Arguments) Bool(key string) bool {
	raw, ok := a[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && parsed
	}
	return false
}
