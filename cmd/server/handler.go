package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/analysis"
	"github.com/rxtech-lab/argo-insight/internal/indicator"
	"github.com/rxtech-lab/argo-insight/internal/logger"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Server exposes the analysis service over HTTP.
type Server struct {
	service *analysis.Service
	config  analysis.Config
	logger  *logger.Logger
}

// NewServer creates an HTTP server around the given analysis service.
func NewServer(service *analysis.Service, config analysis.Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Server{
		service: service,
		config:  config,
		logger:  log,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/analysis/{ticker}", s.handleAnalysis).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/schema", s.handleSchema).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalysis runs one render for the ticker in the path. Query params:
// start, end (YYYY-MM-DD), short, long (days), seed (int64).
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	req, err := s.parseRequest(ticker, r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	report, err := s.service.Analyze(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError

		switch errors.GetCode(err) {
		case errors.ErrCodeInvalidParameter:
			status = http.StatusBadRequest
		case errors.ErrCodeDataNotFound:
			status = http.StatusNotFound
		}

		s.logger.Error("analysis failed",
			zap.String("ticker", ticker),
			zap.Error(err),
		)
		s.writeJSON(w, status, errorResponse{Error: err.Error()})

		return
	}

	if report.ModelSkipReason != "" {
		// The range produced too few complete rows to train a model.
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: report.ModelSkipReason})

		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

// handleSchema serves the JSON schema of the config file format.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := s.config.Schema()
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(schema))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) parseRequest(ticker string, r *http.Request) (analysis.Request, error) {
	query := r.URL.Query()

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := query.Get("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return analysis.Request{}, errors.Wrap(errors.ErrCodeInvalidDateRange, "invalid end date", err)
		}

		end = parsed
	}

	start := end.AddDate(-1, 0, 0)
	if raw := query.Get("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return analysis.Request{}, errors.Wrap(errors.ErrCodeInvalidDateRange, "invalid start date", err)
		}

		start = parsed
	}

	params := s.config.Indicators

	if raw := query.Get("short"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return analysis.Request{}, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid short window", err)
		}

		params.ShortWindow = value
	}

	if raw := query.Get("long"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return analysis.Request{}, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid long window", err)
		}

		params.LongWindow = value
	}

	seed := optional.None[int64]()

	if raw := query.Get("seed"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return analysis.Request{}, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid seed", err)
		}

		seed = optional.Some(value)
	}

	return analysis.Request{
		Ticker: ticker,
		Start:  start,
		End:    end,
		Params: optional.Some[indicator.Params](params),
		Seed:   seed,
	}, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
