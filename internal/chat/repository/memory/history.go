package memory

import (
	"context"

	"healthsmart-chatbot/internal/model"
)

func (r *implRepository) Append(ctx context.Context, sessionID string, turn model.ConversationTurn) error {
	s := r.getOrCreate(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turn)
	if over := len(s.turns) - r.capacity; over > 0 {
		kept := make([]model.ConversationTurn, r.capacity)
		copy(kept, s.turns[over:])
		s.turns = kept
	}
	return nil
}

func (r *implRepository) Recent(ctx context.Context, sessionID string) ([]model.ConversationTurn, error) {
	s, ok := r.sessions.Get(sessionID)
	if !ok {
		return []model.ConversationTurn{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out, nil
}

func (r *implRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions.Remove(sessionID)
	return nil
}

func (r *implRepository) getOrCreate(sessionID string) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions.Get(sessionID); ok {
		// Re-adding restarts the idle timer.
		r.sessions.Add(sessionID, s)
		return s
	}
	s := &session{turns: make([]model.ConversationTurn, 0, r.capacity)}
	r.sessions.Add(sessionID, s)
	return s
}
