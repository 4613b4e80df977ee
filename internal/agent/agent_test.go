package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"orgnet/internal/infrastructure/llm"
)

type fakeCompleter struct {
	completion *llm.Completion
	err        error

	gotSystem string
	gotUser   string
	gotTools  []llm.ToolDefinition
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string, tools []llm.ToolDefinition) (*llm.Completion, error) {
	f.gotSystem = system
	f.gotUser = user
	f.gotTools = tools
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "echoes its text argument",
		Schema:      json.RawMessage(`{"type":"object","properties":{"text":{"type":"string"}}}`),
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			return "echo: " + args.String("text"), nil
		},
	}
}

func TestDispatchRunsSelectedTool(t *testing.T) {
	completer := &fakeCompleter{completion: &llm.Completion{
		ToolCall: &llm.ToolCall{Name: "echo", Arguments: `{"text":"ship the release"}`},
	}}
	d, err := NewDispatcher(completer, []Tool{echoTool("echo"), echoTool("other")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	result, err := d.Dispatch(context.Background(), "please echo something")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Tool != "echo" {
		t.Errorf("tool = %q, want echo", result.Tool)
	}
	if result.Result != "echo: ship the release" {
		t.Errorf("result = %q", result.Result)
	}

	if completer.gotUser != "please echo something" {
		t.Errorf("user message = %q", completer.gotUser)
	}
	if completer.gotSystem == "" {
		t.Error("expected a system prompt")
	}
	if len(completer.gotTools) != 2 || completer.gotTools[0].Name != "echo" || completer.gotTools[1].Name != "other" {
		t.Errorf("tool definitions = %+v", completer.gotTools)
	}
}

func TestDispatchEmptyQuery(t *testing.T) {
	d, err := NewDispatcher(&fakeCompleter{}, []Tool{echoTool("echo")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	if _, err := d.Dispatch(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestDispatchCompleterError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	d, err := NewDispatcher(completer, []Tool{echoTool("echo")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	_, err = d.Dispatch(context.Background(), "do something")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("err = %v, want model call failure", err)
	}
}

func TestDispatchNoToolSelected(t *testing.T) {
	completer := &fakeCompleter{completion: &llm.Completion{Content: "I cannot help with that."}}
	d, err := NewDispatcher(completer, []Tool{echoTool("echo")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	_, err = d.Dispatch(context.Background(), "do something")
	if err == nil || !strings.Contains(err.Error(), "no tool") {
		t.Fatalf("err = %v, want no-tool failure", err)
	}
	if !strings.Contains(err.Error(), "I cannot help with that.") {
		t.Errorf("err = %v, want model content included", err)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	completer := &fakeCompleter{completion: &llm.Completion{
		ToolCall: &llm.ToolCall{Name: "delete_everything", Arguments: "{}"},
	}}
	d, err := NewDispatcher(completer, []Tool{echoTool("echo")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	_, err = d.Dispatch(context.Background(), "do something")
	if err == nil || !strings.Contains(err.Error(), "delete_everything") {
		t.Fatalf("err = %v, want unknown tool failure", err)
	}
}

func TestDispatchMalformedArguments(t *testing.T) {
	completer := &fakeCompleter{completion: &llm.Completion{
		ToolCall: &llm.ToolCall{Name: "echo", Arguments: `{"text": `},
	}}
	d, err := NewDispatcher(completer, []Tool{echoTool("echo")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	if _, err := d.Dispatch(context.Background(), "do something"); err == nil {
		t.Fatal("expected error for malformed arguments")
	}
}

func TestDispatchHandlerFailureKeepsResult(t *testing.T) {
	failing := Tool{
		Name:        "always_fails",
		Description: "fails with a rendered reply",
		Schema:      json.RawMessage(`{"type":"object","properties":{}}`),
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			return "Error creating task: nonce too low", errors.New("nonce too low")
		},
	}
	completer := &fakeCompleter{completion: &llm.Completion{
		ToolCall: &llm.ToolCall{Name: "always_fails", Arguments: "{}"},
	}}
	d, err := NewDispatcher(completer, []Tool{failing})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	result, err := d.Dispatch(context.Background(), "do something")
	if err != nil {
		t.Fatalf("Dispatch: %v, want rendered failure with nil error", err)
	}
	if result.Result != "Error creating task: nonce too low" {
		t.Errorf("result = %q", result.Result)
	}
}

func TestDispatchHandlerFailureWithoutResult(t *testing.T) {
	failing := Tool{
		Name:        "always_fails",
		Description: "fails without a reply",
		Schema:      json.RawMessage(`{"type":"object","properties":{}}`),
		Handler: func(ctx context.Context, args Arguments) (string, error) {
			return "", errors.New("boom")
		},
	}
	completer := &fakeCompleter{completion: &llm.Completion{
		ToolCall: &llm.ToolCall{Name: "always_fails", Arguments: "{}"},
	}}
	d, err := NewDispatcher(completer, []Tool{failing})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	if _, err := d.Dispatch(context.Background(), "do something"); err == nil {
		t.Fatal("expected error when the handler fails with no reply")
	}
}

func TestNewDispatcherValidation(t *testing.T) {
	if _, err := NewDispatcher(nil, []Tool{echoTool("echo")}); err == nil {
		t.Error("expected error for nil completer")
	}
	if _, err := NewDispatcher(&fakeCompleter{}, nil); err == nil {
		t.Error("expected error for empty catalog")
	}
	if _, err := NewDispatcher(&fakeCompleter{}, []Tool{echoTool("echo"), echoTool("echo")}); err == nil {
		t.Error("expected error for duplicate tool names")
	}
	noHandler := Tool{Name: "broken"}
	if _, err := NewDispatcher(&fakeCompleter{}, []Tool{noHandler}); err == nil {
		t.Error("expected error for missing handler")
	}
}

func TestArgumentsString(t *testing.T) {
	args, err := parseArguments(`{"name":"Alice","count":1500,"big":9000000000000000000,"flag":true}`)
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	tests := []struct {
		key  string
		want string
	}{
		{"name", "Alice"},
		{"count", "1500"},
		{"big", "9000000000000000000"},
		{"flag", "true"},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := args.String(tt.key); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestArgumentsUint(t *testing.T) {
	args, err := parseArguments(`{"id":7,"text":"42","padded":" 13 ","frac":1.5,"neg":-3,"word":"seven"}`)
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	tests := []struct {
		key    string
		want   uint64
		wantOK bool
	}{
		{"id", 7, true},
		{"text", 42, true},
		{"padded", 13, true},
		{"frac", 0, false},
		{"neg", 0, false},
		{"word", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		got, ok := args.Uint(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Uint(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestArgumentsBool(t *testing.T) {
	args, err := parseArguments(`{"yes":true,"no":false,"text":"true","off":"false","junk":"maybe"}`)
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	tests := []struct {
		key  string
		want bool
	}{
		{"yes", true},
		{"no", false},
		{"text", true},
		{"off", false},
		{"junk", false},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := args.Bool(tt.key); got != tt.want {
			t.Errorf("Bool(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestParseArgumentsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "null"} {
		args, err := parseArguments(raw)
		if err != nil {
			t.Fatalf("parseArguments(%q): %v", raw, err)
		}
		if args == nil {
			t.Fatalf("parseArguments(%q) returned nil map", raw)
		}
	}
}

func TestDispatcherToolsCopies(t *testing.T) {
	d, err := NewDispatcher(&fakeCompleter{}, []Tool{echoTool("echo")})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	tools := d.Tools()
	if len(tools) != 1 {
		t.Fatalf("len = %d, want 1", len(tools))
	}
	tools[0].Name = "mutated"
	if d.tools[0].Name != "echo" {
		t.Error("Tools() must return a copy")
	}
}
