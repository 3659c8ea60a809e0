package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-engine/config"
	httpLayer "finance-engine/http"
	"finance-engine/repository"
	"finance-engine/service"
	"finance-engine/solver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	repo := repository.NewCalculationMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("Using Redis solve cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	sv := solver.Solver{
		Tolerance:     cfg.SolverTolerance,
		MaxIterations: cfg.SolverMaxIterations,
		Step:          solver.DefaultStep,
	}

	financeService := service.NewFinanceService(repo, cache, sv, cfg.SolverInitialGuess)

	tvmHandler := httpLayer.NewTVMHandler(financeService)
	cashFlowHandler := httpLayer.NewCashFlowHandler(financeService)
	metricsHandler := httpLayer.NewMetricsHandler(financeService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	limited := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/tvm/solve", limited(tvmHandler.SolveTVM))
	mux.Handle("/cashflow/npv", limited(cashFlowHandler.NetPresentValue))
	mux.Handle("/cashflow/irr", limited(cashFlowHandler.InternalRateOfReturn))
	mux.Handle("/cashflow/mirr", limited(metricsHandler.ModifiedIRR))
	mux.Handle("/cashflow/payback", limited(metricsHandler.Payback))
	mux.Handle("/cashflow/discounted-payback", limited(metricsHandler.DiscountedPayback))

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Finance engine listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
