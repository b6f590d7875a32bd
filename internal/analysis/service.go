// Package analysis orchestrates one dashboard render: fetch history and
// fundamentals, compute indicators, derive a recommendation, and train the
// next-day-direction model.
package analysis

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/cache"
	"github.com/rxtech-lab/argo-insight/internal/fundamentals"
	"github.com/rxtech-lab/argo-insight/internal/indicator"
	"github.com/rxtech-lab/argo-insight/internal/logger"
	"github.com/rxtech-lab/argo-insight/internal/ml"
	"github.com/rxtech-lab/argo-insight/internal/pipeline"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/rxtech-lab/argo-insight/pkg/marketdata/provider"
	"go.uber.org/zap"
)

// Request describes one dashboard render.
type Request struct {
	Ticker string    `validate:"required"`
	Start  time.Time `validate:"required"`
	End    time.Time `validate:"required,gtfield=Start"`
	// Params overrides the configured indicator defaults when non-zero.
	Params optional.Option[indicator.Params]
	// Seed makes the train/test split and model training deterministic.
	Seed optional.Option[int64]
}

// ModelReport summarizes one fitted prediction model.
type ModelReport struct {
	Accuracy  float64 `json:"accuracy"`
	TrainRows int     `json:"train_rows"`
	TestRows  int     `json:"test_rows"`
}

// Report is the full result of one render.
type Report struct {
	RenderID           uuid.UUID                    `json:"render_id"`
	Ticker             string                       `json:"ticker"`
	Series             types.PriceSeries            `json:"series"`
	Indicators         *indicator.Set               `json:"indicators"`
	Fundamentals       types.Fundamentals           `json:"fundamentals"`
	Recommendation     types.Recommendation         `json:"recommendation"`
	RecommendationNote string                       `json:"recommendation_note"`
	Model              optional.Option[ModelReport] `json:"model"`
	ModelSkipReason    string                       `json:"model_skip_reason,omitempty"`
}

// ClassifierFactory builds a fresh classifier for one fit. The seed is only
// set when the request asked for a deterministic render.
type ClassifierFactory func(seed optional.Option[int64]) ml.Classifier

// Service runs renders against injected collaborators.
type Service struct {
	history       provider.HistoryProvider
	fundamentals  provider.FundamentalsProvider
	newClassifier ClassifierFactory
	cache         cache.Cache
	logger        *logger.Logger
	validate      *validator.Validate
	config        Config
}

// NewService creates an analysis service.
// fundamentalsProvider may be nil for sources without company fundamentals;
// the recommendation then falls through to Hold.
func NewService(
	config Config,
	historyProvider provider.HistoryProvider,
	fundamentalsProvider provider.FundamentalsProvider,
	newClassifier ClassifierFactory,
	keyedCache cache.Cache,
	log *logger.Logger,
) *Service {
	if newClassifier == nil {
		forestSize := config.ForestSize
		newClassifier = func(seed optional.Option[int64]) ml.Classifier {
			opts := []ml.ForestOption{ml.WithNumTrees(forestSize)}
			if seed.IsSome() {
				opts = append(opts, ml.WithSeed(seed.Unwrap()))
			}

			return ml.NewRandomForest(opts...)
		}
	}

	if keyedCache == nil {
		keyedCache = cache.NewMemory()
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Service{
		history:       historyProvider,
		fundamentals:  fundamentalsProvider,
		newClassifier: newClassifier,
		cache:         keyedCache,
		logger:        log,
		validate:      validator.New(),
		config:        config,
	}
}

// Analyze runs one full render: fetch, compute, recommend, fit. Repeated
// calls with identical inputs produce identical indicator output; only the
// train/test partition and model are inherently randomized unless the
// request carries a seed.
func (s *Service) Analyze(ctx context.Context, req Request) (*Report, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid analysis request", err)
	}

	series, err := s.loadHistory(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(series) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataNotFound,
			"no price history for %s in the requested range", req.Ticker)
	}

	params := req.Params.TakeOr(s.config.Indicators)

	set, err := indicator.Compute(series, params)
	if err != nil {
		return nil, err
	}

	snapshot := s.loadFundamentals(ctx, req.Ticker)
	recommendation, note := fundamentals.RecommendSnapshot(snapshot)

	report := &Report{
		RenderID:           uuid.New(),
		Ticker:             req.Ticker,
		Series:             series,
		Indicators:         set,
		Fundamentals:       snapshot,
		Recommendation:     recommendation,
		RecommendationNote: note,
		Model:              optional.None[ModelReport](),
	}

	model, skipReason, err := s.trainModel(series, set, req.Seed)
	if err != nil {
		return nil, err
	}

	report.Model = model
	report.ModelSkipReason = skipReason

	s.logger.Info("render complete",
		zap.String("render_id", report.RenderID.String()),
		zap.String("ticker", req.Ticker),
		zap.Int("rows", len(series)),
		zap.String("recommendation", string(recommendation)),
	)

	return report, nil
}

// loadHistory fetches the price series through the keyed cache.
func (s *Service) loadHistory(ctx context.Context, req Request) (types.PriceSeries, error) {
	key := cache.HistoryKey(req.Ticker, req.Start, req.End)

	if cached, ok := s.cache.Get(key); ok {
		if series, ok := cached.(types.PriceSeries); ok {
			return series, nil
		}
	}

	series, err := s.history.GetDailyHistory(ctx, req.Ticker, req.Start, req.End)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err,
			"failed to fetch history for %s", req.Ticker)
	}

	if err := series.Validate(); err != nil {
		return nil, err
	}

	s.cache.Set(key, series)

	return series, nil
}

// loadFundamentals fetches the snapshot through the keyed cache. Provider
// failures degrade to an empty snapshot; the recommendation rule treats
// missing values as Hold.
func (s *Service) loadFundamentals(ctx context.Context, ticker string) types.Fundamentals {
	empty := types.Fundamentals{
		Ticker:      ticker,
		Sector:      optional.None[string](),
		Country:     optional.None[string](),
		PERatio:     optional.None[float64](),
		PBRatio:     optional.None[float64](),
		TrailingEPS: optional.None[float64](),
	}

	if s.fundamentals == nil {
		return empty
	}

	key := cache.FundamentalsKey(ticker)

	if cached, ok := s.cache.Get(key); ok {
		if snapshot, ok := cached.(types.Fundamentals); ok {
			return snapshot
		}
	}

	snapshot, err := s.fundamentals.GetFundamentals(ctx, ticker)
	if err != nil {
		s.logger.Warn("fundamentals unavailable",
			zap.String("ticker", ticker),
			zap.Error(err),
		)

		return empty
	}

	s.cache.Set(key, snapshot)

	return snapshot
}

// trainModel builds the training set, splits it, fits a classifier and
// scores it on the held-out rows. Insufficient data is an informational
// skip, not an error. Fitted model reports are memoized by a fingerprint
// of the training set so an unchanged render does not refit.
func (s *Service) trainModel(series types.PriceSeries, set *indicator.Set, seed optional.Option[int64]) (optional.Option[ModelReport], string, error) {
	ts, err := pipeline.Build(series, set)
	if err != nil {
		var insufficientErr *errors.InsufficientDataError
		if errors.As(err, &insufficientErr) {
			return optional.None[ModelReport](), insufficientErr.Message, nil
		}

		return optional.None[ModelReport](), "", err
	}

	key := cache.ModelKey(fingerprint(ts))

	if seed.IsNone() {
		// Only an unseeded render may reuse a cached fit; a seeded render
		// is expected to reproduce its exact partition.
		if cached, ok := s.cache.Get(key); ok {
			if report, ok := cached.(ModelReport); ok {
				return optional.Some(report), "", nil
			}
		}
	}

	var rng *rand.Rand
	if seed.IsSome() {
		rng = rand.New(rand.NewSource(seed.Unwrap()))
	}

	train, test, err := pipeline.Split(ts, s.config.TestFraction, rng)
	if err != nil {
		return optional.None[ModelReport](), "", err
	}

	classifier := s.newClassifier(seed)

	if err := classifier.Fit(train.Features, train.Labels); err != nil {
		return optional.None[ModelReport](), "", err
	}

	predicted, err := classifier.Predict(test.Features)
	if err != nil {
		return optional.None[ModelReport](), "", err
	}

	report := ModelReport{
		Accuracy:  ml.Accuracy(predicted, test.Labels),
		TrainRows: train.Rows(),
		TestRows:  test.Rows(),
	}

	if seed.IsNone() {
		s.cache.Set(key, report)
	}

	return optional.Some(report), "", nil
}

// fingerprint hashes the training set contents for the model cache key.
func fingerprint(ts *pipeline.TrainingSet) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	rows, cols := ts.Features.Dims()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(ts.Features.At(row, col)))
			h.Write(buf)
		}

		binary.LittleEndian.PutUint64(buf, uint64(ts.Labels[row]))
		h.Write(buf)
	}

	return h.Sum64()
}
