package repository

import (
	"sync"

	"finance-engine/domain"
)

// CalculationMemory is an in-memory CalculationRepository. Safe for
// concurrent use by parallel requests.
type CalculationMemory struct {
	mu   sync.Mutex
	data []domain.Calculation
}

// NewCalculationMemory creates an empty in-memory calculation history.
func NewCalculationMemory() *CalculationMemory {
	return &CalculationMemory{}
}

// Save appends the calculation to the history.
func (r *CalculationMemory) Save(calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, calc)
	return nil
}

// All returns a copy of the stored history.
func (r *CalculationMemory) All() []domain.Calculation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Calculation, len(r.data))
	copy(out, r.data)
	return out
}
