package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/damon-houk/expense-tracker/internal/application/service"
	"github.com/damon-houk/expense-tracker/internal/domain/entity"
	"github.com/damon-houk/expense-tracker/internal/domain/filter"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/middleware"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/view"
	"github.com/gorilla/mux"
)

// TrackerHandler exposes the tracker over HTTP. The service must have been
// built with view as its display.
type TrackerHandler struct {
	mu      sync.Mutex
	service *service.TrackerService
	view    *view.TableView
	logger  logger.Logger
}

// NewTrackerHandler creates a new tracker handler
func NewTrackerHandler(svc *service.TrackerService, tv *view.TableView, log logger.Logger) *TrackerHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &TrackerHandler{
		service: svc,
		view:    tv,
		logger:  log,
	}
}

// ListTransactions returns the current table. Every mutation refreshes the
// view, so it is served as is and keeps its highlights.
func (h *TrackerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sendTable(w, http.StatusOK)
}

// AddTransaction handles adding a new transaction
func (h *TrackerHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ok, err := h.service.AddTransaction(r.Context(), req.Amount, req.Category)
	if err != nil {
		h.internalError(w, r, "Failed to add transaction", err)
		return
	}
	if !ok {
		sendErrorResponse(w, h.logger, "Invalid transaction",
			"Amount must be a positive value and category must not be empty", http.StatusBadRequest, requestID)
		return
	}

	h.sendTable(w, http.StatusCreated)
}

// Undo handles removing the transaction at the first selected position
func (h *TrackerHandler) Undo(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req UndoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.service.RemoveTransaction(r.Context(), req.Positions)
	switch {
	case err == nil:
		h.sendTable(w, http.StatusOK)
	case errors.Is(err, entity.ErrUndoDisallowed):
		h.view.DrainNotices()
		sendErrorResponse(w, h.logger, "Undo disallowed", err.Error(), http.StatusConflict, requestID)
	default:
		h.internalError(w, r, "Failed to undo transaction", err)
	}
}

// SetFilter replaces the active filter and applies it
func (h *TrackerHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req SetFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	var (
		f   filter.TransactionFilter
		err error
	)
	switch req.Type {
	case FilterTypeAmount:
		f, err = filter.NewAmountFilter(req.Amount)
	case FilterTypeCategory:
		f, err = filter.NewCategoryFilter(req.Category)
	default:
		sendErrorResponse(w, h.logger, "Invalid filter type",
			"Filter type must be 'amount' or 'category'", http.StatusBadRequest, requestID)
		return
	}
	if err != nil {
		sendErrorResponse(w, h.logger, "Invalid filter", err.Error(), http.StatusBadRequest, requestID)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.service.SetFilter(f)
	h.apply(w, r)
}

// ApplyFilter highlights the rows matched by the active filter
func (h *TrackerHandler) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.apply(w, r)
}

func (h *TrackerHandler) apply(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.ApplyFilter(r.Context()); err != nil {
		h.internalError(w, r, "Failed to apply filter", err)
		return
	}
	h.sendTable(w, http.StatusOK)
}

// RegisterRoutes registers the tracker routes
func (h *TrackerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	router.HandleFunc("/transactions", h.AddTransaction).Methods(http.MethodPost)
	router.HandleFunc("/transactions/undo", h.Undo).Methods(http.MethodPost)
	router.HandleFunc("/filter", h.SetFilter).Methods(http.MethodPut)
	router.HandleFunc("/filter/apply", h.ApplyFilter).Methods(http.MethodPost)

	h.logger.Info("Tracker routes registered", map[string]interface{}{
		"routes": []string{
			"GET /transactions",
			"POST /transactions",
			"POST /transactions/undo",
			"PUT /filter",
			"POST /filter/apply",
		},
	})
}

// sendTable writes the view state and consumes its notices. Callers hold h.mu.
func (h *TrackerHandler) sendTable(w http.ResponseWriter, status int) {
	resp := TableResponse{Table: h.view.TakeTable()}
	if f := h.service.ActiveFilter(); f != nil {
		resp.Filter = f.String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func (h *TrackerHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	requestID := middleware.GetRequestID(r.Context())

	h.logger.Error(msg, map[string]interface{}{
		"request_id": requestID,
		"error":      err.Error(),
	})
	sendErrorResponse(w, h.logger, "Internal server error", msg, http.StatusInternalServerError, requestID)
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	})
}
