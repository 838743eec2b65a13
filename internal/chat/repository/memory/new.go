package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"healthsmart-chatbot/internal/chat/repository"
	"healthsmart-chatbot/internal/model"
)

const (
	DefaultCapacity    = 5
	DefaultMaxSessions = 10000
	DefaultSessionTTL  = time.Hour
)

// Config bounds the store.
type Config struct {
	// Capacity is the number of turns kept per session.
	Capacity int
	// MaxSessions caps tracked sessions; least recently used ones go first.
	MaxSessions int
	// SessionTTL expires sessions idle for longer than this.
	SessionTTL time.Duration
}

type session struct {
	mu    sync.Mutex
	turns []model.ConversationTurn
}

type implRepository struct {
	capacity int

	// mu serializes get-or-create so two requests never create twin sessions.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

var _ repository.HistoryRepository = (*implRepository)(nil)

// New creates an in-process history store keyed by session id.
func New(cfg Config) repository.HistoryRepository {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	return &implRepository{
		capacity: cfg.Capacity,
		sessions: expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
	}
}
