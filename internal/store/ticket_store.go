package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/ticksolve/ticksolve/internal/model"
)

// ticketsKey is the single kv entry holding the serialized ticket
// collection. The payload is a plain JSON array with no version field.
const ticketsKey = "tickets"

// TicketStore persists the full ticket collection as one JSON blob under a
// single key. It carries no validation rules and assigns no identities;
// the repository owns both.
type TicketStore struct {
	kv     *SQLiteStore
	logger *zap.Logger
}

// NewTicketStore wraps the given key-value storage. A nil logger is
// replaced by a no-op logger.
func NewTicketStore(kv *SQLiteStore, logger *zap.Logger) *TicketStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketStore{kv: kv, logger: logger}
}

// Load reads the stored ticket collection. A missing key or an unparseable
// payload is logged and treated as an empty collection, never an error.
func (s *TicketStore) Load(ctx context.Context) []model.Ticket {
	raw, ok, err := s.kv.Get(ctx, ticketsKey)
	if err != nil {
		s.logger.Error("failed to load tickets", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var tickets []model.Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		s.logger.Error("discarding corrupt ticket payload", zap.Error(err))
		return nil
	}
	return tickets
}

// Save serializes the full collection and overwrites the tickets key.
// Failures are logged and returned; the caller decides whether its
// in-memory state stands regardless.
func (s *TicketStore) Save(ctx context.Context, tickets []model.Ticket) error {
	if tickets == nil {
		tickets = []model.Ticket{}
	}

	raw, err := json.Marshal(tickets)
	if err != nil {
		s.logger.Error("failed to serialize tickets", zap.Error(err))
		return err
	}

	if err := s.kv.Set(ctx, ticketsKey, string(raw)); err != nil {
		s.logger.Error("failed to save tickets",
			zap.Int("count", len(tickets)), zap.Error(err))
		return err
	}
	return nil
}
