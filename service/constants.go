package service

const (
	// DefaultInitialGuess seeds the iterative rate solves (tvm ir, irr).
	// 10% per period converges for ordinary financial streams; callers
	// hitting non-convergence can configure a different seed.
	DefaultInitialGuess = 0.1

	MaxPeriods       = 600   // 50 años en meses
	MaxFlowPairs     = 100   // máximo de pares (amount, frequency) por request
	MaxStreamPeriods = 10000 // máximo de periodos totales al expandir un stream
)
