package wordapi

import "context"

// ClientInterface defines the word-of-day provider operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	FetchSolution(ctx context.Context, date string) (string, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
