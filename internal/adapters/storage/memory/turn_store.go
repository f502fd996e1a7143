package memory

import (
	"sync"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
)

// TurnStore is the in-memory, session-bounded turn history. History is
// discarded when the process exits; there is no persistence backend.
type TurnStore struct {
	mu    sync.RWMutex
	turns []*domain.Turn
}

func NewTurnStore() *TurnStore {
	return &TurnStore{}
}

func (s *TurnStore) Append(turn *domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turn)
	return nil
}

// Turns returns the last `limit` turns in append order, or all turns when
// limit <= 0. The returned slice is a copy so callers cannot reorder or
// truncate the history.
func (s *TurnStore) Turns(limit int) ([]*domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]*domain.Turn, len(turns))
	copy(out, turns)
	return out, nil
}
