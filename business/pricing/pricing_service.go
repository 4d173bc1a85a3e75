package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"myHousePrice/domain"
	"myHousePrice/pkg/logger"
)

// ---- Collaborator interfaces ----

// Model is the trained regression model, loaded once at startup.
type Model interface {
	Predict(fv domain.FeatureVector) (float64, error)
}

// Explainer is the attribution oracle: for a feature vector it returns a base
// value plus one contribution per column, aligned to the same column order,
// with base + sum(contributions) equal to the model's prediction.
type Explainer interface {
	Explain(fv domain.FeatureVector) (domain.Attribution, error)
}

type ValuationRepository interface {
	Save(ctx context.Context, record *domain.ValuationRecord) error
	FindRecent(ctx context.Context, limit int) ([]domain.ValuationRecord, error)
}

type ValuationCache interface {
	Get(ctx context.Context, key string) (*domain.Valuation, bool, error)
	Set(ctx context.Context, key string, v *domain.Valuation) error
}

// ---- Usecase / Service ----

type PricingService struct {
	aligner   *FeatureAligner
	composer  *ExplanationComposer
	model     Model
	explainer Explainer
	records   ValuationRepository
	cache     ValuationCache
}

func NewPricingService(
	aligner *FeatureAligner,
	composer *ExplanationComposer,
	model Model,
	explainer Explainer,
	records ValuationRepository,
	cache ValuationCache,
) *PricingService {
	return &PricingService{
		aligner:   aligner,
		composer:  composer,
		model:     model,
		explainer: explainer,
		records:   records,
		cache:     cache,
	}
}

// Estimate runs the full pipeline for one raw case: align, predict, explain,
// compose. The pipeline is deterministic per input, so responses are served
// from the cache when one is configured. Record persistence and cache errors
// are logged, never surfaced; alignment and consistency errors fail loudly.
func (s *PricingService) Estimate(ctx context.Context, raw domain.RawCase, topN int) (domain.Valuation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Valuation{}, fmt.Errorf("context error: %w", err)
	}

	key := cacheKey(raw, topN)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("valuation cache lookup failed", "error", err)
		} else if ok {
			ValuationCacheHits.Inc()
			return *cached, nil
		}
	}

	fv, err := s.aligner.Align(raw)
	if err != nil {
		ValuationsTotal.WithLabelValues("invalid_input").Inc()
		return domain.Valuation{}, err
	}

	price, err := s.model.Predict(fv)
	if err != nil {
		ValuationsTotal.WithLabelValues("model_error").Inc()
		return domain.Valuation{}, fmt.Errorf("model predict: %w", err)
	}

	attr, err := s.explainer.Explain(fv)
	if err != nil {
		ValuationsTotal.WithLabelValues("oracle_error").Inc()
		return domain.Valuation{}, fmt.Errorf("attribution oracle: %w", err)
	}

	expl, err := s.composer.Compose(fv, attr, price, topN)
	if err != nil {
		ValuationsTotal.WithLabelValues("inconsistent").Inc()
		return domain.Valuation{}, err
	}

	valuation := domain.Valuation{
		PredictedPrice: price,
		BaseValue:      attr.Base,
		Explanation:    expl.Rendered(),
	}

	if s.records != nil {
		record := &domain.ValuationRecord{
			ID:             uuid.NewString(),
			Input:          datatypes.JSONMap(raw),
			PredictedPrice: price,
			BaseValue:      attr.Base,
			Explanation:    strings.Join(valuation.Explanation, "\n"),
		}
		if err := s.records.Save(ctx, record); err != nil {
			logger.Error("Failed to save valuation record", "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, &valuation); err != nil {
			logger.Warn("valuation cache fill failed", "error", err)
		}
	}

	ValuationsTotal.WithLabelValues("ok").Inc()
	return valuation, nil
}

// History lists the most recently served valuations, newest first.
func (s *PricingService) History(ctx context.Context, limit int) ([]domain.ValuationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.records == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	records, err := s.records.FindRecent(ctx, limit)
	if err != nil {
		logger.Error("Failed to list valuation records", "error", err)
		return nil, err
	}

	return records, nil
}

// cacheKey hashes the canonical JSON form of (raw, topN). encoding/json
// writes map keys in sorted order, so equal cases hash equally.
func cacheKey(raw domain.RawCase, topN int) string {
	h := fnv.New64a()
	if payload, err := json.Marshal(raw); err == nil {
		_, _ = h.Write(payload)
	}
	_, _ = fmt.Fprintf(h, "|top_n=%d", topN)
	return fmt.Sprintf("valuation:%x", h.Sum64())
}
