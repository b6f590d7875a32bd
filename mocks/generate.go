package mocks

//go:generate mockgen -destination=./mock_history_provider.go -package=mocks github.com/rxtech-lab/argo-insight/pkg/marketdata/provider HistoryProvider
//go:generate mockgen -destination=./mock_fundamentals_provider.go -package=mocks github.com/rxtech-lab/argo-insight/pkg/marketdata/provider FundamentalsProvider
//go:generate mockgen -destination=./mock_classifier.go -package=mocks github.com/rxtech-lab/argo-insight/internal/ml Classifier
//go:generate mockgen -destination=./mock_cache.go -package=mocks github.com/rxtech-lab/argo-insight/internal/cache Cache
