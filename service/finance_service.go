package service

import (
	"fmt"
	"log"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"finance-engine/domain"
	"finance-engine/repository"
	"finance-engine/solver"
)

// FinanceService computes time-value-of-money quantities and
// cash-flow metrics. Closed forms are evaluated directly; solves
// without a closed form (tvm ir, irr) go through the root solver and
// are memoized in the cache.
type FinanceService struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	solver solver.Solver
	guess  float64
}

// NewFinanceService creates a FinanceService using sv as iteration
// policy and guess as the starting point for iterative rate solves.
func NewFinanceService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	sv solver.Solver,
	guess float64,
) *FinanceService {
	return &FinanceService{repo: repo, cache: cache, solver: sv, guess: guess}
}

// record appends a result to the calculation history. Persistence is
// best-effort: a failed save is logged and the result still returned.
func (s *FinanceService) record(kind string, value float64) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(domain.Calculation{Kind: kind, Value: value}); err != nil {
		log.Printf("Warning: failed to save %s calculation: %v", kind, err)
	}
}

// cachedRate looks up a previously converged rate.
func (s *FinanceService) cachedRate(key string) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return 0, false
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return rate, true
}

// storeRate memoizes a converged rate. Cache failures are logged only.
func (s *FinanceService) storeRate(key string, rate float64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(key, strconv.FormatFloat(rate, 'g', -1, 64)); err != nil {
		log.Printf("Warning: failed to cache rate under %s: %v", key, err)
	}
}

// tvmKey hashes the four known TVM quantities into a cache key.
func tvmKey(n, pv, pmt, fv float64) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%g|%g|%g|%g", n, pv, pmt, fv)
	return fmt.Sprintf("tvm:ir:%016x", h.Sum64())
}

// streamKey hashes a cash-flow stream into a cache key.
func streamKey(prefix string, stream domain.CashFlowStream) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%g", stream.Initial)
	for i := range stream.Amounts {
		fmt.Fprintf(h, "|%g:%d", stream.Amounts[i], stream.Frequencies[i])
	}
	return fmt.Sprintf("%s:%016x", prefix, h.Sum64())
}

// validateStream checks the CashFlowStream invariants. The length
// check comes first so a mismatch is never silently absorbed.
func validateStream(stream domain.CashFlowStream) error {
	if len(stream.Amounts) != len(stream.Frequencies) {
		return fmt.Errorf("%w: %d amounts vs %d frequencies",
			ErrLengthMismatch, len(stream.Amounts), len(stream.Frequencies))
	}
	if len(stream.Amounts) > MaxFlowPairs {
		return fmt.Errorf("%w: stream exceeds %d flow pairs", ErrInvalidArgument, MaxFlowPairs)
	}
	total := 0
	for i, f := range stream.Frequencies {
		if f < 0 {
			return fmt.Errorf("%w: frequency at index %d is negative", ErrInvalidArgument, i)
		}
		total += f
	}
	if total > MaxStreamPeriods {
		return fmt.Errorf("%w: stream exceeds %d total periods", ErrInvalidArgument, MaxStreamPeriods)
	}
	return nil
}
