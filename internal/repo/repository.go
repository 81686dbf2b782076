// Package repo holds the in-memory authority over the ticket collection.
// Every mutation goes through here: the repository computes the new
// collection, mirrors it to the store, and keeps the in-memory state as
// the source of truth for the UI.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/store"
)

// ErrNotFound is returned when an operation names a ticket id that is no
// longer in the collection.
var ErrNotFound = errors.New("ticket not found")

// Repository owns the live ticket collection. It is not safe for
// concurrent use; all calls happen on the UI's single event loop.
type Repository struct {
	store   *store.TicketStore
	logger  *zap.Logger
	tickets []model.Ticket

	// now is the clock used for timestamps. Overridable in tests.
	now func() time.Time
}

// New creates a repository and loads the persisted collection from the
// store. A nil logger is replaced by a no-op logger.
func New(ctx context.Context, s *store.TicketStore, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		store:   s,
		logger:  logger,
		tickets: s.Load(ctx),
		now:     time.Now,
	}
}

// Create validates nothing itself: the draft must already have passed the
// form validator. It assigns a fresh id, sets status to open, stamps both
// timestamps, appends the ticket, and persists the collection.
func (r *Repository) Create(ctx context.Context, draft model.Draft) model.Ticket {
	draft.ApplyDefaults()

	now := r.now().UTC()
	ticket := model.Ticket{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      model.StatusOpen,
		Priority:    draft.Priority,
		Category:    draft.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.tickets = append(r.tickets, ticket)
	r.persist(ctx)

	return ticket
}

// Update overwrites the editable fields of an existing ticket from the
// draft. Identity, status, and creation time are preserved; updatedAt
// always moves strictly forward, even within the same clock tick.
func (r *Repository) Update(ctx context.Context, id string, draft model.Draft) (model.Ticket, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		r.logger.Warn("update of missing ticket", zap.String("id", id))
		return model.Ticket{}, ErrNotFound
	}

	draft.ApplyDefaults()

	ticket := r.tickets[idx]
	now := r.now().UTC()
	if !now.After(ticket.UpdatedAt) {
		now = ticket.UpdatedAt.Add(time.Nanosecond)
	}

	ticket.Title = draft.Title
	ticket.Description = draft.Description
	ticket.Priority = draft.Priority
	ticket.Category = draft.Category
	ticket.UpdatedAt = now

	r.tickets[idx] = ticket
	r.persist(ctx)

	return ticket, nil
}

// Delete removes the ticket with the given id and persists. Deleting an
// absent id is a no-op and reports false. The confirmation step belongs
// to the caller, not the repository.
func (r *Repository) Delete(ctx context.Context, id string) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}

	r.tickets = append(r.tickets[:idx], r.tickets[idx+1:]...)
	r.persist(ctx)

	return true
}

// FindByID looks up a ticket by id.
func (r *Repository) FindByID(id string) (model.Ticket, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return model.Ticket{}, false
	}
	return r.tickets[idx], true
}

// List returns the collection in insertion order. The slice is a copy;
// callers cannot mutate repository state through it.
func (r *Repository) List() []model.Ticket {
	out := make([]model.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out
}

// Len returns the number of tickets in the collection.
func (r *Repository) Len() int {
	return len(r.tickets)
}

// persist mirrors the in-memory collection to the store. The in-memory
// state stands even when the write fails; the failure is logged and the
// session continues on data that may not survive a restart.
func (r *Repository) persist(ctx context.Context) {
	if err := r.store.Save(ctx, r.tickets); err != nil {
		r.logger.Warn("in-memory state ahead of storage", zap.Error(err))
	}
}

func (r *Repository) indexOf(id string) int {
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			return i
		}
	}
	return -1
}
