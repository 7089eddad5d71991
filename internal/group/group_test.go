package group

import (
	"testing"
	"time"

	"github.com/dori/wisht/internal/model"
)

func item(id, title string, created time.Time) model.Item {
	return model.Item{ID: id, Title: title, Category: "build", CreatedAt: created}
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestByDateEmpty(t *testing.T) {
	if got := ByDate(nil, NewestFirst); len(got) != 0 {
		t.Errorf("expected no buckets for empty input, got %d", len(got))
	}
}

func TestByDateDescending(t *testing.T) {
	items := []model.Item{
		item("1", "morning", ts("2024-01-02T10:00")),
		item("2", "afternoon", ts("2024-01-02T15:00")),
		item("3", "earlier day", ts("2024-01-01T09:00")),
	}

	buckets := ByDate(items, NewestFirst)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Date != "2024/01/02" || buckets[1].Date != "2024/01/01" {
		t.Fatalf("unexpected bucket order: %s, %s", buckets[0].Date, buckets[1].Date)
	}
	if buckets[0].Items[0].ID != "2" || buckets[0].Items[1].ID != "1" {
		t.Errorf("first bucket should hold 15:00 then 10:00, got %s then %s",
			buckets[0].Items[0].ID, buckets[0].Items[1].ID)
	}
	if buckets[1].Items[0].ID != "3" {
		t.Errorf("second bucket should hold the Jan 1 item, got %s", buckets[1].Items[0].ID)
	}
}

func TestByDateToggleReversesEverything(t *testing.T) {
	items := []model.Item{
		item("1", "a", ts("2024-01-02T10:00")),
		item("2", "b", ts("2024-01-02T15:00")),
		item("3", "c", ts("2024-01-01T09:00")),
	}

	desc := ByDate(items, NewestFirst)
	asc := ByDate(items, OldestFirst)

	if asc[0].Date != desc[len(desc)-1].Date {
		t.Errorf("toggling direction should reverse bucket order")
	}
	if asc[len(asc)-1].Items[0].ID != "1" || asc[len(asc)-1].Items[1].ID != "2" {
		t.Errorf("toggling direction should reverse item order within a date")
	}
}

func TestByDatePartitions(t *testing.T) {
	items := []model.Item{
		item("1", "a", ts("2024-03-01T08:00")),
		item("2", "b", ts("2024-03-02T08:00")),
		item("3", "c", ts("2024-03-01T20:00")),
		item("4", "d", ts("2024-03-03T08:00")),
	}

	for _, dir := range []Direction{NewestFirst, OldestFirst} {
		seen := make(map[string]int)
		total := 0
		for _, b := range ByDate(items, dir) {
			for _, it := range b.Items {
				seen[it.ID]++
				total++
				if it.CreatedAt.Format(DateLayout) != b.Date {
					t.Errorf("item %s filed under wrong date %s", it.ID, b.Date)
				}
			}
		}
		if total != len(items) {
			t.Errorf("dir %v: %d items bucketed, want %d", dir, total, len(items))
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("dir %v: item %s appears %d times", dir, id, n)
			}
		}
	}
}

func TestByDateStableOnTies(t *testing.T) {
	same := ts("2024-05-05T12:00")
	items := []model.Item{
		item("first", "a", same),
		item("second", "b", same),
		item("third", "c", same),
	}

	for _, dir := range []Direction{NewestFirst, OldestFirst} {
		buckets := ByDate(items, dir)
		if len(buckets) != 1 {
			t.Fatalf("identical timestamps must produce exactly one bucket, got %d", len(buckets))
		}
		got := buckets[0].Items
		if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
			t.Errorf("dir %v: equal timestamps lost input order: %s %s %s",
				dir, got[0].ID, got[1].ID, got[2].ID)
		}
	}
}

func TestDirectionToggle(t *testing.T) {
	if NewestFirst.Toggle() != OldestFirst || OldestFirst.Toggle() != NewestFirst {
		t.Error("Toggle should flip the direction")
	}
}
