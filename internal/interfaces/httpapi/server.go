package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"orgnet/internal/agent"
	"orgnet/internal/config"
	"orgnet/internal/domain"
)

// QueryDispatcher routes natural-language queries to agent tools.
type QueryDispatcher interface {
	Dispatch(ctx context.Context, query string) (agent.Result, error)
	Tools() []agent.Tool
}

// OutcomeStore reads the submission journal.
type OutcomeStore interface {
	QueryOutcomes(ctx context.Context, filter domain.OutcomeFilter) ([]domain.OutcomeRecord, error)
	LastOutcomeID(ctx context.Context) (int64, bool, error)
	Ping(ctx context.Context) error
}

// RPCStatus reports chain reachability.
type RPCStatus interface {
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

type Server struct {
	cfg        config.Config
	dispatcher QueryDispatcher
	store      OutcomeStore
	rpc        RPCStatus
	metrics    *Metrics
	buildInfo  BuildInfo
	sender     string
}

func NewServer(cfg config.Config, dispatcher QueryDispatcher, store OutcomeStore, rpc RPCStatus, metrics *Metrics, buildInfo BuildInfo, sender string) (*Server, error) {
	if dispatcher == nil || store == nil || rpc == nil {
		return nil, errors.New("http server dependencies must not be nil")
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		store:      store,
		rpc:        rpc,
		metrics:    metrics,
		buildInfo:  buildInfo,
		sender:     sender,
	}, nil
}

func (s *Server) MetricsObserver() *Metrics {
	return s.metrics
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/process-query", s.handleProcessQuery)
	mux.HandleFunc("/tools", s.handleTools)
	mux.HandleFunc("/outcomes", s.handleOutcomes)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/version", s.handleVersion)
	return mux
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to OrgNet API",
		"endpoints": map[string]string{
			"/process-query": "POST - Process a query using the agent",
			"/tools":         "GET - List the registered agent tools",
			"/outcomes":      "GET - Query recorded transaction outcomes",
			"/healthz":       "GET - Liveness probe",
			"/readyz":        "GET - Readiness probe",
			"/state":         "GET - Runtime configuration and journal state",
			"/metrics":       "GET - Runtime counters",
			"/version":       "GET - Build information",
		},
	})
}

func (s *Server) handleProcessQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(request.Query) == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	s.metrics.IncQuery()
	result, err := s.dispatcher.Dispatch(r.Context(), request.Query)
	if err != nil {
		s.metrics.IncQueryError()
		slog.Error("query dispatch failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.IncToolCall(result.Tool)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	type toolInfo struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	}
	tools := s.dispatcher.Tools()
	response := make([]toolInfo, len(tools))
	for i, tool := range tools {
		response[i] = toolInfo{Name: tool.Name, Description: tool.Description, Parameters: tool.Schema}
	}
	respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseOutcomeFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	outcomes, err := s.store.QueryOutcomes(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "query failed")
		return
	}
	respondJSON(w, http.StatusOK, outcomes)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "journal not ready")
		return
	}
	if _, err := s.rpc.LatestBlockNumber(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "rpc not ready")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	lastID, ok, err := s.store.LastOutcomeID(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "state read failed")
		return
	}
	response := map[string]any{
		"chain_id":        s.cfg.ChainID,
		"rpc_url":         s.cfg.RPCURL,
		"sender":          s.sender,
		"last_outcome_id": lastID,
		"has_outcomes":    ok,
		"contracts": map[string]string{
			"task":        s.cfg.TaskContract,
			"notice":      s.cfg.NoticeContract,
			"certificate": s.cfg.CertificateContract,
			"leave":       s.cfg.LeaveContract,
			"payment":     s.cfg.PaymentContract,
		},
		"config": map[string]any{
			"http_addr":          s.cfg.HTTPAddr,
			"db_driver":          s.cfg.DBDriver,
			"kafka_topic_prefix": s.cfg.KafkaTopicPrefix,
			"llm_model":          s.cfg.LLMModel,
			"gas_limit":          s.cfg.GasLimit,
			"receipt_timeout":    s.cfg.ReceiptTimeout.String(),
		},
	}
	respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	snap := s.metrics.Snapshot()

	uptime := time.Since(snap.StartTime).Seconds()

	fmt.Fprintf(w, "orgnet_uptime_seconds %.0f\n", uptime)
	fmt.Fprintf(w, "orgnet_queries_total %d\n", snap.Queries)
	fmt.Fprintf(w, "orgnet_query_errors_total %d\n", snap.QueryErrors)
	fmt.Fprintf(w, "orgnet_tx_submitted_total %d\n", snap.Submitted)
	fmt.Fprintf(w, "orgnet_tx_confirmed_total %d\n", snap.Confirmed)
	fmt.Fprintf(w, "orgnet_tx_failed_total %d\n", snap.Failed)
	fmt.Fprintf(w, "orgnet_tx_confirm_wait_seconds %.3f\n", snap.LastConfirmWait.Seconds())
	fmt.Fprintf(w, "orgnet_tx_confirm_wait_seconds_max %.3f\n", snap.MaxConfirmWait.Seconds())
	for _, tool := range sortedKeys(snap.ToolCalls) {
		fmt.Fprintf(w, "orgnet_tool_calls_total{tool=%q} %d\n", tool, snap.ToolCalls[tool])
	}
	for _, function := range sortedKeys(snap.FunctionCalls) {
		fmt.Fprintf(w, "orgnet_tx_function_total{function=%q} %d\n", function, snap.FunctionCalls[function])
	}
	for _, kind := range sortedKeys(snap.FailuresByKind) {
		fmt.Fprintf(w, "orgnet_tx_failures_total{kind=%q} %d\n", kind, snap.FailuresByKind[kind])
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.buildInfo)
}

func parseOutcomeFilter(r *http.Request) (domain.OutcomeFilter, error) {
	limit, err := parseLimit(r)
	if err != nil {
		return domain.OutcomeFilter{}, err
	}
	from, err := parseUintQuery(r, "from_block")
	if err != nil {
		return domain.OutcomeFilter{}, err
	}
	to, err := parseUintQuery(r, "to_block")
	if err != nil {
		return domain.OutcomeFilter{}, err
	}
	entityID, err := parseUintQuery(r, "entity_id")
	if err != nil {
		return domain.OutcomeFilter{}, err
	}

	return domain.OutcomeFilter{
		Domain:    strings.ToLower(r.URL.Query().Get("domain")),
		Action:    strings.ToLower(r.URL.Query().Get("action")),
		Sender:    strings.ToLower(r.URL.Query().Get("sender")),
		EntityID:  entityID,
		FromBlock: from,
		ToBlock:   to,
		Limit:     limit,
	}, nil
}

func parseLimit(r *http.Request) (int, error) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return 0, errors.New("invalid limit")
		}
		return value, nil
	}
	return 100, nil
}

func parseUintQuery(r *http.Request, key string) (*uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &value, nil
}

func sortedKeys(source map[string]uint64) []string {
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
