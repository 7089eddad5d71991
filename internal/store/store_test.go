package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dori/wisht/internal/client"
	"github.com/dori/wisht/internal/model"
)

// fakeAPI counts calls and serves canned responses
type fakeAPI struct {
	pending []model.Item
	done    []model.Item
	calls   map[string]int
	fail    error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

func (f *fakeAPI) Pending(_ context.Context, _ client.Scope) ([]model.Item, error) {
	f.calls["pending"]++
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]model.Item(nil), f.pending...), nil
}

func (f *fakeAPI) Done(_ context.Context, _ client.Scope) ([]model.Item, error) {
	f.calls["done"]++
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]model.Item(nil), f.done...), nil
}

func (f *fakeAPI) Create(_ context.Context, _ client.Scope, title, cat string) (*model.Item, error) {
	f.calls["create"]++
	if f.fail != nil {
		return nil, f.fail
	}
	item := model.Item{
		ID:        "srv-1",
		Title:     title,
		Category:  cat,
		Status:    model.StatusPending,
		CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	return &item, nil
}

func (f *fakeAPI) Update(_ context.Context, _ client.Scope, id, title, cat string) (*model.Item, error) {
	f.calls["update"]++
	if f.fail != nil {
		return nil, f.fail
	}
	for _, it := range f.pending {
		if it.ID == id {
			it.Title = title
			it.Category = cat
			return &it, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeAPI) Complete(_ context.Context, _ client.Scope, id, comment string) (*model.Item, error) {
	f.calls["complete"]++
	if f.fail != nil {
		return nil, f.fail
	}
	now := time.Now()
	for _, it := range f.pending {
		if it.ID == id {
			it.Status = model.StatusDone
			it.Comment = comment
			it.CompletedAt = &now
			return &it, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeAPI) UpdateComment(_ context.Context, _ client.Scope, id, comment string) (*model.Item, error) {
	f.calls["comment"]++
	if f.fail != nil {
		return nil, f.fail
	}
	for _, it := range f.done {
		if it.ID == id {
			it.Comment = comment
			return &it, nil
		}
	}
	return nil, client.ErrNotFound
}

func pendingItem(id, title string) model.Item {
	return model.Item{
		ID:        id,
		Title:     title,
		Category:  "build",
		Status:    model.StatusPending,
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func doneItem(id, title, comment string) model.Item {
	at := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	return model.Item{
		ID:          id,
		Title:       title,
		Category:    "play",
		Status:      model.StatusDone,
		Comment:     comment,
		CompletedAt: &at,
	}
}

func TestCreateEmptyTitleNeverHitsNetwork(t *testing.T) {
	api := newFakeAPI()
	s := New(api, client.Scope{}, nil)

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := s.Create(context.Background(), title, "build"); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("Create(%q): got %v, want ErrEmptyTitle", title, err)
		}
	}
	if api.calls["create"] != 0 {
		t.Errorf("empty title issued %d requests", api.calls["create"])
	}
	if len(s.Pending()) != 0 {
		t.Error("empty title mutated the pending collection")
	}
}

func TestCreateAppendsServerRecord(t *testing.T) {
	api := newFakeAPI()
	s := New(api, client.Scope{}, nil)

	item, err := s.Create(context.Background(), "fly a kite", "play")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if item.ID != "srv-1" {
		t.Errorf("server-assigned id not preserved: %+v", item)
	}

	pending := s.Pending()
	if len(pending) != 1 || pending[0].ID != "srv-1" {
		t.Errorf("pending = %+v", pending)
	}
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	api := newFakeAPI()
	api.pending = []model.Item{pendingItem("1", "first")}
	s := New(api, client.Scope{}, nil)

	if err := s.LoadPending(context.Background()); err != nil {
		t.Fatalf("LoadPending failed: %v", err)
	}

	api.fail = errors.New("connection refused")
	if err := s.LoadPending(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}

	pending := s.Pending()
	if len(pending) != 1 || pending[0].ID != "1" {
		t.Errorf("failed load clobbered local state: %+v", pending)
	}
}

func TestUpdateReplacesById(t *testing.T) {
	api := newFakeAPI()
	api.pending = []model.Item{pendingItem("1", "first"), pendingItem("2", "second")}
	s := New(api, client.Scope{}, nil)
	s.LoadPending(context.Background())

	if _, err := s.Update(context.Background(), "2", "second, improved", "go out"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	pending := s.Pending()
	if pending[0].Title != "first" {
		t.Errorf("untargeted item changed: %+v", pending[0])
	}
	if pending[1].Title != "second, improved" || pending[1].Category != "go out" {
		t.Errorf("update not applied: %+v", pending[1])
	}
}

func TestUpdateUnknownIdIsAFailure(t *testing.T) {
	api := newFakeAPI()
	api.pending = []model.Item{pendingItem("1", "first")}
	s := New(api, client.Scope{}, nil)
	s.LoadPending(context.Background())

	if _, err := s.Update(context.Background(), "missing", "x", "build"); !errors.Is(err, client.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if s.Pending()[0].Title != "first" {
		t.Error("failed update mutated local state")
	}
}

func TestCompleteRemovesFromPendingImmediately(t *testing.T) {
	api := newFakeAPI()
	api.pending = []model.Item{pendingItem("42", "the answer"), pendingItem("7", "other")}
	s := New(api, client.Scope{}, nil)
	s.LoadPending(context.Background())

	if err := s.Complete(context.Background(), "42", "done!"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	// Absent from pending before any done refresh has happened
	for _, it := range s.Pending() {
		if it.ID == "42" {
			t.Error("completed item still in pending collection")
		}
	}
	if len(s.Pending()) != 1 {
		t.Errorf("pending = %+v", s.Pending())
	}
	if len(s.Done()) != 0 {
		t.Error("store must not fabricate a done record locally")
	}
}

func TestCompleteFailureLeavesPendingIntact(t *testing.T) {
	api := newFakeAPI()
	api.pending = []model.Item{pendingItem("1", "first")}
	s := New(api, client.Scope{}, nil)
	s.LoadPending(context.Background())

	api.fail = errors.New("boom")
	if err := s.Complete(context.Background(), "1", ""); err == nil {
		t.Fatal("expected failure")
	}
	if len(s.Pending()) != 1 {
		t.Error("failed completion removed the item locally")
	}
}

func TestUpdateCommentTouchesOnlyTarget(t *testing.T) {
	api := newFakeAPI()
	api.done = []model.Item{doneItem("a", "one", "old"), doneItem("b", "two", "keep")}
	s := New(api, client.Scope{}, nil)
	s.LoadDone(context.Background())

	if _, err := s.UpdateComment(context.Background(), "a", "new"); err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}

	done := s.Done()
	if done[0].Comment != "new" {
		t.Errorf("target comment = %q", done[0].Comment)
	}
	if done[0].Title != "one" || done[0].CompletedAt == nil {
		t.Errorf("comment edit changed other fields: %+v", done[0])
	}
	if done[1].Comment != "keep" {
		t.Errorf("untargeted item changed: %+v", done[1])
	}
}
