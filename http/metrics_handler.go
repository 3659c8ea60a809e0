package http

import (
	"encoding/json"
	"net/http"

	"finance-engine/domain"
	"finance-engine/service"
)

// MetricsHandler serves the cash-flow metrics that sit next to IRR:
// modified IRR and the payback family.
type MetricsHandler struct {
	service *service.FinanceService
}

func NewMetricsHandler(service *service.FinanceService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

type mirrRequest struct {
	Initial      float64   `json:"initial"`
	Amounts      []float64 `json:"amounts"`
	Frequencies  []int     `json:"frequencies"`
	FinanceRate  float64   `json:"finance_rate"`
	ReinvestRate float64   `json:"reinvest_rate"`
}

type paybackRequest struct {
	Initial      float64   `json:"initial"`
	Amounts      []float64 `json:"amounts"`
	Frequencies  []int     `json:"frequencies"`
	DiscountRate float64   `json:"discount_rate"`
}

type paybackResponse struct {
	Periods float64 `json:"periods"`
}

// ModifiedIRR handles POST /cashflow/mirr.
func (h *MetricsHandler) ModifiedIRR(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req mirrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stream := domain.CashFlowStream{
		Initial:     req.Initial,
		Amounts:     req.Amounts,
		Frequencies: req.Frequencies,
	}

	rate, err := h.service.ModifiedIRR(stream, req.FinanceRate, req.ReinvestRate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rateResponse{Rate: rate})
}

// Payback handles POST /cashflow/payback.
func (h *MetricsHandler) Payback(w http.ResponseWriter, r *http.Request) {
	h.payback(w, r, false)
}

// DiscountedPayback handles POST /cashflow/discounted-payback.
func (h *MetricsHandler) DiscountedPayback(w http.ResponseWriter, r *http.Request) {
	h.payback(w, r, true)
}

func (h *MetricsHandler) payback(w http.ResponseWriter, r *http.Request, discounted bool) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req paybackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stream := domain.CashFlowStream{
		Initial:     req.Initial,
		Amounts:     req.Amounts,
		Frequencies: req.Frequencies,
	}

	var (
		periods float64
		err     error
	)
	if discounted {
		periods, err = h.service.DiscountedPayback(stream, req.DiscountRate)
	} else {
		periods, err = h.service.Payback(stream)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paybackResponse{Periods: periods})
}
