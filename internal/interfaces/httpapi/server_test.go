package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orgnet/internal/agent"
	"orgnet/internal/application"
	"orgnet/internal/config"
	"orgnet/internal/domain"
)

var _ application.PipelineObserver = (*Metrics)(nil)

type stubDispatcher struct {
	result   agent.Result
	err      error
	gotQuery string
	tools    []agent.Tool
}

func (s *stubDispatcher) Dispatch(ctx context.Context, query string) (agent.Result, error) {
	s.gotQuery = query
	if s.err != nil {
		return agent.Result{}, s.err
	}
	return s.result, nil
}

func (s *stubDispatcher) Tools() []agent.Tool {
	return s.tools
}

type stubStore struct {
	outcomes  []domain.OutcomeRecord
	gotFilter domain.OutcomeFilter
	queryErr  error
	lastID    int64
	hasLast   bool
	pingErr   error
}

func (s *stubStore) QueryOutcomes(ctx context.Context, filter domain.OutcomeFilter) ([]domain.OutcomeRecord, error) {
	s.gotFilter = filter
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.outcomes, nil
}

func (s *stubStore) LastOutcomeID(ctx context.Context) (int64, bool, error) {
	return s.lastID, s.hasLast, nil
}

func (s *stubStore) Ping(ctx context.Context) error {
	return s.pingErr
}

type stubRPC struct {
	block uint64
	err   error
}

func (s *stubRPC) LatestBlockNumber(ctx context.Context) (uint64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.block, nil
}

func testConfig() config.Config {
	return config.Config{
		RPCURL:           "http://localhost:8545",
		ChainID:          10143,
		GasLimit:         2_000_000,
		ReceiptTimeout:   90 * time.Second,
		TaskContract:     "0x1000000000000000000000000000000000000001",
		HTTPAddr:         ":8080",
		DBDriver:         "sqlite",
		KafkaTopicPrefix: "orgnet-outcomes",
		LLMModel:         "gpt-4o-mini",
	}
}

func newTestServer(t *testing.T, dispatcher QueryDispatcher, store OutcomeStore, rpc RPCStatus) *Server {
	t.Helper()
	server, err := NewServer(testConfig(), dispatcher, store, rpc, NewMetrics(), BuildInfo{Version: "test"}, "0xabcdef0123456789abcdef0123456789abcdef01")
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return server
}

func TestProcessQuery(t *testing.T) {
	dispatcher := &stubDispatcher{result: agent.Result{Tool: "create_task", Result: "Task created successfully! Task ID: 1, Transaction: 0xabc"}}
	server := newTestServer(t, dispatcher, &stubStore{}, &stubRPC{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/process-query", strings.NewReader(`{"query":"create a task to ship the release"}`))
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	var response struct {
		ToolCalled string `json:"tool_called"`
		Result     string `json:"result"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.ToolCalled != "create_task" {
		t.Errorf("tool_called = %q", response.ToolCalled)
	}
	if !strings.Contains(response.Result, "Task created successfully!") {
		t.Errorf("result = %q", response.Result)
	}
	if dispatcher.gotQuery != "create a task to ship the release" {
		t.Errorf("dispatched query = %q", dispatcher.gotQuery)
	}

	snap := server.MetricsObserver().Snapshot()
	if snap.Queries != 1 || snap.QueryErrors != 0 || snap.ToolCalls["create_task"] != 1 {
		t.Errorf("metrics = %+v", snap)
	}
}

func TestProcessQueryDispatchFailure(t *testing.T) {
	dispatcher := &stubDispatcher{err: errors.New("model selected no tool")}
	server := newTestServer(t, dispatcher, &stubStore{}, &stubRPC{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/process-query", strings.NewReader(`{"query":"do something"}`))
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", recorder.Code)
	}
	var response map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(response["error"], "no tool") {
		t.Errorf("error = %q", response["error"])
	}

	snap := server.MetricsObserver().Snapshot()
	if snap.Queries != 1 || snap.QueryErrors != 1 {
		t.Errorf("metrics = %+v", snap)
	}
}

func TestProcessQueryRejectsBadRequests(t *testing.T) {
	server := newTestServer(t, &stubDispatcher{}, &stubStore{}, &stubRPC{})
	handler := server.Handler()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/process-query", nil))
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-query", strings.NewReader("{not json")))
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-query", strings.NewReader(`{"query":"  "}`)))
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("empty query status = %d, want 400", recorder.Code)
	}
}

func TestRootWelcome(t *testing.T) {
	server := newTestServer(t, &stubDispatcher{}, &stubStore{}, &stubRPC{})
	handler := server.Handler()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	var response struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Message != "Welcome to OrgNet API" {
		t.Errorf("message = %q", response.Message)
	}
	if response.Endpoints["/process-query"] != "POST - Process a query using the agent" {
		t.Errorf("endpoints = %v", response.Endpoints)
	}

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/neither", nil))
	if recorder.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", recorder.Code)
	}
}

func TestToolsEndpoint(t *testing.T) {
	dispatcher := &stubDispatcher{tools: []agent.Tool{
		{Name: "create_task", Description: "Create a task", Schema: json.RawMessage(`{"type":"object"}`)},
		{Name: "get_holidays", Description: "List holidays", Schema: json.RawMessage(`{"type":"object","properties":{}}`)},
	}}
	server := newTestServer(t, dispatcher, &stubStore{}, &stubRPC{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/tools", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	var response []struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response) != 2 || response[0].Name != "create_task" || response[1].Name != "get_holidays" {
		t.Errorf("response = %+v", response)
	}
	if string(response[0].Parameters) != `{"type":"object"}` {
		t.Errorf("parameters = %s", response[0].Parameters)
	}
}

func TestOutcomesEndpoint(t *testing.T) {
	store := &stubStore{outcomes: []domain.OutcomeRecord{{
		ID:      2,
		ChainID: 10143,
		Domain:  "task",
		Action:  "create_task",
		TxHash:  "0xabc",
	}}}
	server := newTestServer(t, &stubDispatcher{}, store, &stubRPC{})

	recorder := httptest.NewRecorder()
	target := "/outcomes?domain=Task&action=create_task&sender=0xABCD&entity_id=7&from_block=10&to_block=20&limit=5"
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	filter := store.gotFilter
	if filter.Domain != "task" || filter.Action != "create_task" || filter.Sender != "0xabcd" {
		t.Errorf("filter strings = %+v", filter)
	}
	if filter.EntityID == nil || *filter.EntityID != 7 {
		t.Errorf("entity_id = %v", filter.EntityID)
	}
	if filter.FromBlock == nil || *filter.FromBlock != 10 || filter.ToBlock == nil || *filter.ToBlock != 20 {
		t.Errorf("block range = %v..%v", filter.FromBlock, filter.ToBlock)
	}
	if filter.Limit != 5 {
		t.Errorf("limit = %d", filter.Limit)
	}

	var response []domain.OutcomeRecord
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response) != 1 || response[0].TxHash != "0xabc" {
		t.Errorf("response = %+v", response)
	}
}

func TestOutcomesEndpointDefaultsAndErrors(t *testing.T) {
	store := &stubStore{}
	server := newTestServer(t, &stubDispatcher{}, store, &stubRPC{})
	handler := server.Handler()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/outcomes", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if store.gotFilter.Limit != 100 {
		t.Errorf("default limit = %d, want 100", store.gotFilter.Limit)
	}

	for _, target := range []string{
		"/outcomes?limit=abc",
		"/outcomes?limit=-1",
		"/outcomes?from_block=ten",
		"/outcomes?entity_id=x",
	} {
		recorder = httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", target, recorder.Code)
		}
	}

	store.queryErr = errors.New("db gone")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/outcomes", nil))
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("query failure status = %d, want 500", recorder.Code)
	}
}

func TestReadyz(t *testing.T) {
	store := &stubStore{}
	rpc := &stubRPC{block: 100}
	server := newTestServer(t, &stubDispatcher{}, store, rpc)
	handler := server.Handler()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if recorder.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200", recorder.Code)
	}

	store.pingErr = errors.New("db down")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("journal down status = %d, want 503", recorder.Code)
	}

	store.pingErr = nil
	rpc.err = errors.New("rpc down")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("rpc down status = %d, want 503", recorder.Code)
	}
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t, &stubDispatcher{}, &stubStore{}, &stubRPC{})
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", recorder.Body.String())
	}
}

func TestStateEndpoint(t *testing.T) {
	store := &stubStore{lastID: 42, hasLast: true}
	server := newTestServer(t, &stubDispatcher{}, store, &stubRPC{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/state", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var response struct {
		ChainID       uint64            `json:"chain_id"`
		RPCURL        string            `json:"rpc_url"`
		Sender        string            `json:"sender"`
		LastOutcomeID int64             `json:"last_outcome_id"`
		HasOutcomes   bool              `json:"has_outcomes"`
		Contracts     map[string]string `json:"contracts"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.ChainID != 10143 {
		t.Errorf("chain_id = %d", response.ChainID)
	}
	if response.Sender != "0xabcdef0123456789abcdef0123456789abcdef01" {
		t.Errorf("sender = %q", response.Sender)
	}
	if response.LastOutcomeID != 42 || !response.HasOutcomes {
		t.Errorf("journal state = %d/%v", response.LastOutcomeID, response.HasOutcomes)
	}
	if response.Contracts["task"] != "0x1000000000000000000000000000000000000001" {
		t.Errorf("contracts = %v", response.Contracts)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t, &stubDispatcher{}, &stubStore{}, &stubRPC{})
	metrics := server.MetricsObserver()
	metrics.IncQuery()
	metrics.IncToolCall("create_task")
	metrics.OnSubmitted("createTask")
	metrics.OnConfirmed("createTask", 1500*time.Millisecond)
	metrics.OnFailed("createNotice", domain.ErrReceiptTimeout)

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	body := recorder.Body.String()
	for _, want := range []string{
		"orgnet_queries_total 1",
		"orgnet_tx_submitted_total 1",
		"orgnet_tx_confirmed_total 1",
		"orgnet_tx_failed_total 1",
		"orgnet_tx_confirm_wait_seconds 1.500",
		`orgnet_tool_calls_total{tool="create_task"} 1`,
		`orgnet_tx_function_total{function="createTask"} 1`,
		`orgnet_tx_failures_total{kind="receipt_timeout"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q:\n%s", want, body)
		}
	}
}

func TestVersionEndpoint(t *testing.T) {
	server := newTestServer(t, &stubDispatcher{}, &stubStore{}, &stubRPC{})
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/version", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"Version":"test"`) {
		t.Errorf("body = %s", recorder.Body.String())
	}
}
