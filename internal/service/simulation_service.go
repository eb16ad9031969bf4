package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpgo/investment-simulator/internal/calculation"
	"github.com/rpgo/investment-simulator/internal/config"
	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/rpgo/investment-simulator/internal/repository"
	"github.com/shopspring/decimal"
)

// cacheKeyPrefix is bumped whenever the result encoding or the calculation changes.
const cacheKeyPrefix = "invsim:v1"

// SimulationService validates parameters, consults the result cache and
// runs the simulation engine.
type SimulationService struct {
	engine *calculation.SimulationEngine
	cache  repository.CacheRepository
	logger calculation.Logger
}

// NewSimulationService creates a service; a nil cache disables caching and a
// nil logger discards output.
func NewSimulationService(engine *calculation.SimulationEngine, cache repository.CacheRepository, logger calculation.Logger) *SimulationService {
	if engine == nil {
		engine = calculation.NewSimulationEngine()
	}
	if cache == nil {
		cache = repository.NopCache{}
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &SimulationService{engine: engine, cache: cache, logger: logger}
}

// Simulate returns the projection and ledger for p. Invalid parameters yield
// a config.ValidationErrors; cache failures are logged and never surface.
func (s *SimulationService) Simulate(ctx context.Context, p domain.SimulationParameters) (*domain.SimulationResult, error) {
	if err := config.ValidateParameters(p); err != nil {
		return nil, err
	}

	key := CacheKey(p)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var result domain.SimulationResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.logger.Debugf("cache hit for %s", key)
			return &result, nil
		}
		s.logger.Warnf("discarding undecodable cache entry %s", key)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		s.logger.Warnf("cache lookup failed: %v", err)
	}

	result, err := s.engine.Simulate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	if encoded, err := json.Marshal(result); err != nil {
		s.logger.Warnf("failed to encode result for cache: %v", err)
	} else if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
		s.logger.Warnf("failed to cache result: %v", err)
	}

	return result, nil
}

// CacheKey identifies a parameter tuple. Amounts are written with fixed
// decimals so 500 and 500.00 share an entry.
func CacheKey(p domain.SimulationParameters) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d",
		cacheKeyPrefix,
		decimal.NewFromFloat(p.InitialPrincipal).StringFixed(2),
		decimal.NewFromFloat(p.MonthlyContribution).StringFixed(2),
		decimal.NewFromFloat(p.MonthlyRatePercent).StringFixed(2),
		p.TermMonths,
	)
}
