package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
)

type capturingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	done    chan struct{}
}

func newCapturingAuditRepo(expected int) *capturingAuditRepo {
	return &capturingAuditRepo{done: make(chan struct{}, expected)}
}

func (r *capturingAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	r.entries = append(r.entries, *entry)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func (r *capturingAuditRepo) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for audit write %d", i+1)
		}
	}
}

func TestDispatcher_PersistsEntries(t *testing.T) {
	repo := newCapturingAuditRepo(2)
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	ts := time.Now().UTC()
	d.Record(ports.AuditEntryInput{ActorID: "admin-1", ActorRole: "admin", Action: "create", LaptopID: "lap-1", Timestamp: ts})
	d.Record(ports.AuditEntryInput{ActorID: "admin-1", ActorRole: "admin", Action: "delete", LaptopID: "lap-2", Timestamp: ts})

	repo.wait(t, 2)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(repo.entries))
	}
	actions := map[string]bool{}
	for _, e := range repo.entries {
		actions[e.Action] = true
		if e.ActorID != "admin-1" {
			t.Fatalf("unexpected actor: %+v", e)
		}
	}
	if !actions["create"] || !actions["delete"] {
		t.Fatalf("missing actions: %v", actions)
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newCapturingAuditRepo(0), zerolog.Nop())

	first := d.shardIndex("lap-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("lap-42") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
