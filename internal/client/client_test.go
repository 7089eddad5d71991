package client

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dori/wisht/internal/db"
	"github.com/dori/wisht/internal/server"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	ts := httptest.NewServer(server.New(database, log.New(io.Discard, "", 0)))
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestScopeBasePath(t *testing.T) {
	if got := (Scope{}).basePath(); got != "/api" {
		t.Errorf("zero scope path = %q", got)
	}
	if got := (Scope{ShareID: "abc"}).basePath(); got != "/api/lists/abc" {
		t.Errorf("scoped path = %q", got)
	}
}

func TestClientLifecycle(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	labels, err := c.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(labels) != 3 {
		t.Errorf("categories = %v", labels)
	}

	shareID, err := c.CreateList(ctx)
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	scope := Scope{ShareID: shareID}

	created, err := c.Create(ctx, scope, "climb a mountain", "go out")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("server fields missing: %+v", created)
	}

	updated, err := c.Update(ctx, scope, created.ID, "climb two mountains", "go out")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "climb two mountains" {
		t.Errorf("update not applied: %+v", updated)
	}

	done, err := c.Complete(ctx, scope, created.ID, "what a view")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatal("no server-assigned completion timestamp")
	}

	doneItems, err := c.Done(ctx, scope)
	if err != nil {
		t.Fatalf("Done failed: %v", err)
	}
	if len(doneItems) != 1 || doneItems[0].Comment != "what a view" {
		t.Fatalf("done = %+v", doneItems)
	}

	edited, err := c.UpdateComment(ctx, scope, created.ID, "clouds all day")
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if edited.Comment != "clouds all day" {
		t.Errorf("comment = %q", edited.Comment)
	}

	pending, err := c.Pending(ctx, scope)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("completed item still pending: %+v", pending)
	}
}

func TestClientNotFound(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Update(ctx, Scope{}, "missing", "t", "build"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update of unknown id: got %v, want ErrNotFound", err)
	}
	if _, err := c.Pending(ctx, Scope{ShareID: "bogus"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Pending on unknown share: got %v, want ErrNotFound", err)
	}
}
