package firestore

// Export internal functions for testing
var (
	NewReadRetryer = newReadRetryer
	RelativePath   = relativePath
)
