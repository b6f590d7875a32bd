package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidType          ErrorCode = 103
	ErrCodeMissingParameter     ErrorCode = 104
	ErrCodeInvalidDateRange     ErrorCode = 105
	ErrCodeInvalidTicker        ErrorCode = 106
	ErrCodeInvalidFraction      ErrorCode = 107
	ErrCodeInvalidStdDev        ErrorCode = 108
	ErrCodeSchemaVersion        ErrorCode = 109

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound     ErrorCode = 200
	ErrCodeQueryFailed      ErrorCode = 201
	ErrCodeInsufficientData ErrorCode = 202
	ErrCodeUnorderedSeries  ErrorCode = 203
	ErrCodeDuplicateDate    ErrorCode = 204
	ErrCodeStoreUnavailable ErrorCode = 205
	ErrCodeStoreWriteFailed ErrorCode = 206

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Pipeline errors (400-499)
	ErrCodeFeatureAssembly ErrorCode = 400
	ErrCodeSplitFailed     ErrorCode = 401

	// Model errors (500-599)
	ErrCodeModelNotFitted  ErrorCode = 500
	ErrCodeModelFitFailed  ErrorCode = 501
	ErrCodeFeatureMismatch ErrorCode = 502

	// Market data errors (600-699)
	ErrCodeHistoryFetchFailed      ErrorCode = 600
	ErrCodeFundamentalsFetchFailed ErrorCode = 601
	ErrCodeProviderUnsupported     ErrorCode = 602
	ErrCodeHistoryParseFailed      ErrorCode = 603

	// Cache errors (700-799)
	ErrCodeCacheMiss ErrorCode = 700
)
