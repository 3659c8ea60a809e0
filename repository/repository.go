package repository

import "finance-engine/domain"

// CalculationRepository keeps a history of computed results. Saving is
// best-effort from the service's point of view: a failed save is
// logged, never surfaced to the caller.
type CalculationRepository interface {
	Save(calc domain.Calculation) error
	All() []domain.Calculation
}

// CacheRepository memoizes the results of iterative solves, keyed by a
// hash of the solve inputs. A miss is reported through the bool, not
// an error.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
