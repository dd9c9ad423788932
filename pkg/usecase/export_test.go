package usecase

// Export internal functions for testing
var (
	MaxConcurrentReads = maxConcurrentReads
	IsPlainMap         = isPlainMap
	ParseFieldPath     = parseFieldPath
)
