package store_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/store"
	"github.com/ticksolve/ticksolve/tests/testutil"
)

func sampleTickets() []model.Ticket {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []model.Ticket{
		{
			ID:          "t-1",
			Title:       "Wi-Fi not working in dorm",
			Description: "Cannot connect to the campus Wi-Fi in Building B, Room 204",
			Status:      model.StatusOpen,
			Priority:    model.PriorityHigh,
			Category:    "Technical",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "t-2",
			Title:       "Projector malfunction in Lecture Hall A",
			Description: "The projector in Lecture Hall A is showing a blue screen",
			Status:      model.StatusPending,
			Priority:    model.PriorityMedium,
			Category:    "Technical",
			CreatedAt:   now.Add(time.Hour),
			UpdatedAt:   now.Add(2 * time.Hour),
		},
	}
}

func TestTicketStoreRoundTrip(t *testing.T) {
	ts := testutil.NewTestTicketStore(t)
	ctx := context.Background()

	want := sampleTickets()
	if err := ts.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := ts.Load(ctx)
	if len(got) != len(want) {
		t.Fatalf("Load returned %d tickets, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) || !got[i].UpdatedAt.Equal(want[i].UpdatedAt) {
			t.Errorf("ticket %d timestamps changed in round trip: got %+v want %+v", i, got[i], want[i])
		}
		got[i].CreatedAt = want[i].CreatedAt
		got[i].UpdatedAt = want[i].UpdatedAt
		if got[i] != want[i] {
			t.Errorf("ticket %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTicketStoreLoadMissingKey(t *testing.T) {
	ts := testutil.NewTestTicketStore(t)

	got := ts.Load(context.Background())
	if len(got) != 0 {
		t.Fatalf("Load on empty store returned %d tickets, want 0", len(got))
	}
}

func TestTicketStoreLoadCorruptPayload(t *testing.T) {
	kv := testutil.NewTestStore(t)
	ts := store.NewTicketStore(kv, nil)
	ctx := context.Background()

	if err := kv.Set(ctx, "tickets", "{not json"); err != nil {
		t.Fatalf("seeding corrupt payload: %v", err)
	}

	got := ts.Load(ctx)
	if len(got) != 0 {
		t.Fatalf("Load of corrupt payload returned %d tickets, want 0", len(got))
	}
}

func TestTicketStoreSaveOverwritesWholeCollection(t *testing.T) {
	ts := testutil.NewTestTicketStore(t)
	ctx := context.Background()

	if err := ts.Save(ctx, sampleTickets()); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := ts.Save(ctx, sampleTickets()[:1]); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got := ts.Load(ctx)
	if len(got) != 1 {
		t.Fatalf("Load after overwrite returned %d tickets, want 1", len(got))
	}
	if got[0].ID != "t-1" {
		t.Errorf("surviving ticket id = %q, want t-1", got[0].ID)
	}
}

func TestTicketStorePayloadFieldNames(t *testing.T) {
	kv := testutil.NewTestStore(t)
	ts := store.NewTicketStore(kv, nil)
	ctx := context.Background()

	if err := ts.Save(ctx, sampleTickets()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, ok, err := kv.Get(ctx, "tickets")
	if err != nil || !ok {
		t.Fatalf("reading raw payload: ok=%v err=%v", ok, err)
	}

	// The payload is the interchange format: field names are part of
	// the contract.
	for _, field := range []string{
		`"id"`, `"title"`, `"description"`, `"status"`,
		`"priority"`, `"category"`, `"createdAt"`, `"updatedAt"`,
	} {
		if !strings.Contains(raw, field) {
			t.Errorf("payload missing field %s: %s", field, raw)
		}
	}
}

func TestKVGetAbsentKey(t *testing.T) {
	kv := testutil.NewTestStore(t)

	_, ok, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("Get reported an absent key as present")
	}
}

func TestKVDeleteAbsentKey(t *testing.T) {
	kv := testutil.NewTestStore(t)

	if err := kv.Delete(context.Background(), "nope"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
}
