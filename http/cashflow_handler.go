package http

import (
	"encoding/json"
	"net/http"

	"finance-engine/domain"
	"finance-engine/service"
)

type CashFlowHandler struct {
	service *service.FinanceService
}

func NewCashFlowHandler(service *service.FinanceService) *CashFlowHandler {
	return &CashFlowHandler{service: service}
}

type npvRequest struct {
	Initial      float64   `json:"initial"`
	Amounts      []float64 `json:"amounts"`
	Frequencies  []int     `json:"frequencies"`
	DiscountRate float64   `json:"discount_rate"`
}

type npvResponse struct {
	NetPresentValue float64 `json:"npv"`
}

type irrRequest struct {
	Initial     float64   `json:"initial"`
	Amounts     []float64 `json:"amounts"`
	Frequencies []int     `json:"frequencies"`
}

type rateResponse struct {
	Rate float64 `json:"rate"`
}

// NetPresentValue handles POST /cashflow/npv.
func (h *CashFlowHandler) NetPresentValue(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req npvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stream := domain.CashFlowStream{
		Initial:     req.Initial,
		Amounts:     req.Amounts,
		Frequencies: req.Frequencies,
	}

	npv, err := h.service.NetPresentValue(stream, req.DiscountRate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, npvResponse{NetPresentValue: domain.RoundCurrency(npv)})
}

// InternalRateOfReturn handles POST /cashflow/irr.
func (h *CashFlowHandler) InternalRateOfReturn(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req irrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stream := domain.CashFlowStream{
		Initial:     req.Initial,
		Amounts:     req.Amounts,
		Frequencies: req.Frequencies,
	}

	rate, err := h.service.InternalRateOfReturn(stream)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rateResponse{Rate: rate})
}
