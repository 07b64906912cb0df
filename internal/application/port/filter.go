package port

// AdFilter decides whether a subresource request should be blocked.
type AdFilter interface {
	// ShouldBlock reports whether url, requested by a document at
	// documentURL, matches a blocking rule.
	ShouldBlock(url, documentURL string) bool
}
