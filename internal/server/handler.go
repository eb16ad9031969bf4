package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rpgo/investment-simulator/internal/config"
	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/rpgo/investment-simulator/internal/output"
)

const maxBodyBytes = 1 << 20

// Simulator is the part of the service layer the handler depends on.
type Simulator interface {
	Simulate(ctx context.Context, p domain.SimulationParameters) (*domain.SimulationResult, error)
}

// SimulationHandler serves the investment simulation endpoint.
type SimulationHandler struct {
	service Simulator
	logger  *slog.Logger
}

func NewSimulationHandler(service Simulator, logger *slog.Logger) *SimulationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulationHandler{service: service, logger: logger}
}

func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, CodeNotAllowed, "method not allowed", nil)
		return
	}

	page, perPage, err := pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
		return
	}

	params, verrs, err := decodeParameters(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body", nil)
		return
	}
	if len(verrs) > 0 {
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, verrs.First().Message, verrs)
		return
	}

	result, err := h.service.Simulate(r.Context(), params)
	if err != nil {
		if errors.As(err, &verrs) {
			writeError(w, http.StatusUnprocessableEntity, CodeValidation, verrs.First().Message, verrs)
			return
		}
		h.logger.Error("simulation failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
		return
	}

	entries := result.MonthlyEvolution
	var info *output.Page
	if page > 0 {
		rows, pg := output.Paginate(result.MonthlyEvolution, page, perPage)
		entries, info = rows, &pg
	}
	data := newSimulationData(result.ProjectionResult, entries)
	data.Pagination = info
	writeSuccess(w, data)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers unknown routes with the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, CodeNotFound, "route not found", nil)
}

var parameterFields = []string{
	config.FieldInitialPrincipal,
	config.FieldMonthlyContribution,
	config.FieldMonthlyRatePercent,
	config.FieldTermMonths,
}

// decodeParameters reads a JSON object and validates it. A non-nil error
// means the body was not a JSON object. Fields holding a non-number are
// reported as invalid numbers; every other rule comes from
// config.ParameterInput.Resolve. Errors are returned in field order.
func decodeParameters(body io.Reader) (domain.SimulationParameters, config.ValidationErrors, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(body)
	if err := dec.Decode(&raw); err != nil {
		return domain.SimulationParameters{}, nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.SimulationParameters{}, nil, errors.New("unexpected data after JSON object")
	}
	if raw == nil {
		return domain.SimulationParameters{}, nil, errors.New("request body must be a JSON object")
	}

	var input config.ParameterInput
	targets := map[string]**float64{
		config.FieldInitialPrincipal:    &input.InitialPrincipal,
		config.FieldMonthlyContribution: &input.MonthlyContribution,
		config.FieldMonthlyRatePercent:  &input.MonthlyRatePercent,
		config.FieldTermMonths:          &input.TermMonths,
	}
	typeErrs := make(map[string]bool)
	for _, field := range parameterFields {
		msg, ok := raw[field]
		if !ok || string(msg) == "null" {
			continue
		}
		var v float64
		if err := json.Unmarshal(msg, &v); err != nil {
			typeErrs[field] = true
			continue
		}
		*targets[field] = &v
	}

	params, err := input.Resolve()
	if err == nil && len(typeErrs) == 0 {
		return params, nil, nil
	}

	var resolved config.ValidationErrors
	errors.As(err, &resolved)
	var out config.ValidationErrors
	for _, field := range parameterFields {
		if typeErrs[field] {
			out = append(out, config.FieldError{Field: field, Message: config.MsgInvalidNumber})
			continue
		}
		for _, fe := range resolved {
			if fe.Field == field {
				out = append(out, fe)
			}
		}
	}
	return domain.SimulationParameters{}, out, nil
}

func pageParams(r *http.Request) (page, perPage int, err error) {
	q := r.URL.Query()
	parse := func(name string) (int, error) {
		s := q.Get(name)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, errors.New(name + " must be a positive integer")
		}
		return n, nil
	}
	if page, err = parse("page"); err != nil {
		return 0, 0, err
	}
	if perPage, err = parse("perPage"); err != nil {
		return 0, 0, err
	}
	if perPage > 0 && page == 0 {
		page = 1
	}
	return page, perPage, nil
}
