package qdrant

import (
	"healthsmart-chatbot/internal/chat/repository"
	pkgLog "healthsmart-chatbot/pkg/log"
	pkgQdrant "healthsmart-chatbot/pkg/qdrant"
)

const (
	DefaultContentKey = "content"
	LogPrefixRetrieve = "internal.chat.repository.qdrant.Retrieve"
)

type implRetriever struct {
	client         *pkgQdrant.Client
	embedder       repository.Embedder
	collectionName string
	contentKey     string
	l              pkgLog.Logger
}

// New creates a Qdrant-backed context retriever. contentKey names the payload
// field holding the passage text.
func New(client *pkgQdrant.Client, embedder repository.Embedder, collectionName, contentKey string, l pkgLog.Logger) repository.ContextRetriever {
	if contentKey == "" {
		contentKey = DefaultContentKey
	}
	return &implRetriever{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		contentKey:     contentKey,
		l:              l,
	}
}
