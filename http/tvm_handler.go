package http

import (
	"encoding/json"
	"net/http"

	"finance-engine/domain"
	"finance-engine/service"
)

type TVMHandler struct {
	service *service.FinanceService
}

func NewTVMHandler(service *service.FinanceService) *TVMHandler {
	return &TVMHandler{service: service}
}

// SolveTVM handles POST /tvm/solve. Monetary results (pv, pmt, fv) are
// rounded to cents; periods and rates are returned as computed.
func (h *TVMHandler) SolveTVM(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.TVMInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	value, err := h.service.SolveTVM(input)
	if err != nil {
		writeError(w, err)
		return
	}

	switch input.Find {
	case domain.VarPresentValue, domain.VarPayment, domain.VarFutureValue:
		value = domain.RoundCurrency(value)
	}

	writeJSON(w, http.StatusOK, domain.TVMResult{Find: input.Find, Value: value})
}
