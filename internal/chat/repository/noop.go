package repository

import "context"

// NoopRetriever is used when no vector store is configured.
type NoopRetriever struct{}

func (NoopRetriever) Retrieve(ctx context.Context, query string, k int) []string {
	return []string{}
}
