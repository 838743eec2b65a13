package qdrant

import (
	"context"
	"strings"

	pkgQdrant "healthsmart-chatbot/pkg/qdrant"
)

// Retrieve embeds query and returns up to k passage texts in ranking order.
// Any failure is logged and yields an empty result.
func (r *implRetriever) Retrieve(ctx context.Context, query string, k int) []string {
	if k <= 0 || strings.TrimSpace(query) == "" {
		return []string{}
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 || len(vectors[0]) == 0 {
		r.l.Warnf(ctx, "%s: embed query failed: %v", LogPrefixRetrieve, err)
		return []string{}
	}

	res, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: search failed: %v", LogPrefixRetrieve, err)
		return []string{}
	}

	passages := make([]string, 0, len(res.Result))
	for _, point := range res.Result {
		text, ok := point.Payload[r.contentKey].(string)
		if !ok {
			r.l.Warnf(ctx, "%s: point %s has no %q string payload", LogPrefixRetrieve, point.ID, r.contentKey)
			continue
		}
		if text = strings.TrimSpace(text); text == "" {
			continue
		}
		passages = append(passages, text)
		if len(passages) == k {
			break
		}
	}

	r.l.Debugf(ctx, "%s: %d passage(s) for k=%d", LogPrefixRetrieve, len(passages), k)
	return passages
}
