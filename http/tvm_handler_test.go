package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-engine/repository"
	"finance-engine/service"
	"finance-engine/solver"
)

func newTestFinanceService() *service.FinanceService {
	return service.NewFinanceService(
		repository.NewCalculationMemory(),
		repository.NewMockCache(),
		solver.New(),
		service.DefaultInitialGuess,
	)
}

func TestSolveTVMHandler_OK(t *testing.T) {

	handler := NewTVMHandler(newTestFinanceService())

	body := []byte(`{
		"find": "fv",
		"n": 10,
		"ir": 0.05,
		"pv": 0,
		"pmt": -100
	}`)

	req := httptest.NewRequest(http.MethodPost, "/tvm/solve", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.SolveTVM(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var result struct {
		Find  string  `json:"find"`
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Find != "fv" {
		t.Errorf("expected find fv, got %q", result.Find)
	}
	// Monetary results come back rounded to cents.
	if result.Value != 1257.79 {
		t.Errorf("expected 1257.79, got %v", result.Value)
	}
}

func TestSolveTVMHandler_MethodNotAllowed(t *testing.T) {

	handler := NewTVMHandler(newTestFinanceService())

	req := httptest.NewRequest(http.MethodGet, "/tvm/solve", nil)
	w := httptest.NewRecorder()

	handler.SolveTVM(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSolveTVMHandler_BadRequest(t *testing.T) {

	handler := NewTVMHandler(newTestFinanceService())

	req := httptest.NewRequest(http.MethodPost, "/tvm/solve", bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	handler.SolveTVM(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSolveTVMHandler_UnknownVariable(t *testing.T) {

	handler := NewTVMHandler(newTestFinanceService())

	body := []byte(`{"find": "apr", "n": 10, "ir": 0.05}`)
	req := httptest.NewRequest(http.MethodPost, "/tvm/solve", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.SolveTVM(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown variable, got %d", w.Code)
	}
}

func TestSolveTVMHandler_DomainErrorIsUnprocessable(t *testing.T) {

	handler := NewTVMHandler(newTestFinanceService())

	// Negative logarithm argument: mathematically unanswerable.
	body := []byte(`{"find": "n", "ir": 0.1, "pv": 100, "pmt": 10, "fv": 500}`)
	req := httptest.NewRequest(http.MethodPost, "/tvm/solve", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.SolveTVM(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d (%s)", w.Code, w.Body.String())
	}
}
