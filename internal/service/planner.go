// Package service memoizes engine calls behind a cache. A cache failure
// never fails a request; it is logged and the engine result is returned.
package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/rpgo/planning-engine/internal/cache"
	"github.com/rpgo/planning-engine/internal/calculation"
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/sirupsen/logrus"
)

// DefaultTTL bounds how long a memoized result is kept.
const DefaultTTL = 24 * time.Hour

// Planner runs the calculation engine behind a result cache.
type Planner struct {
	engine *calculation.CalculationEngine
	cache  cache.Cache
	logger logrus.FieldLogger
	ttl    time.Duration
}

// NewPlanner builds a Planner. A nil cache disables memoization.
func NewPlanner(engine *calculation.CalculationEngine, c cache.Cache, logger logrus.FieldLogger) *Planner {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Planner{engine: engine, cache: c, logger: logger, ttl: DefaultTTL}
}

// SetTTL overrides DefaultTTL.
func (p *Planner) SetTTL(ttl time.Duration) { p.ttl = ttl }

// CompareAcquisition returns the memoized comparison for in, running the engine on a miss.
func (p *Planner) CompareAcquisition(ctx context.Context, in domain.AcquisitionInput) (*domain.AcquisitionComparison, error) {
	var out domain.AcquisitionComparison
	key, hit := p.lookup(ctx, "acquisition", in, &out)
	if hit {
		return &out, nil
	}

	res, err := p.engine.CompareAcquisition(ctx, in)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, res)
	return res, nil
}

type retirementKey struct {
	Params domain.RetirementParameters `json:"params"`
	Solve  bool                        `json:"solve"`
}

// ProjectRetirement returns the memoized projection, keyed by the parameters and solve flag.
func (p *Planner) ProjectRetirement(ctx context.Context, params domain.RetirementParameters, solve bool) (*domain.RetirementProjection, error) {
	var out domain.RetirementProjection
	key, hit := p.lookup(ctx, "retirement", retirementKey{Params: params, Solve: solve}, &out)
	if hit {
		return &out, nil
	}

	res, err := p.engine.ProjectRetirement(ctx, params, solve)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, res)
	return res, nil
}

// lookup returns the key for v and whether a cached result was decoded into out.
func (p *Planner) lookup(ctx context.Context, prefix string, v any, out any) (string, bool) {
	if p.cache == nil {
		return "", false
	}
	key, err := cache.Key(prefix, v)
	if err != nil {
		p.logger.WithError(err).Warn("cache key")
		return "", false
	}

	data, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.WithError(err).WithField("key", key).Warn("cache get failed")
		return key, false
	}
	if !ok {
		return key, false
	}
	if err := json.Unmarshal(data, out); err != nil {
		p.logger.WithError(err).WithField("key", key).Warn("discarding undecodable cache entry")
		return key, false
	}
	p.logger.WithField("key", key).Debug("cache hit")
	return key, true
}

func (p *Planner) store(ctx context.Context, key string, v any) {
	if p.cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.WithError(err).Warn("cache encode")
		return
	}
	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		p.logger.WithError(err).WithField("key", key).Warn("cache set failed")
	}
}
