package cache

import (
	"context"
	"errors"
	"testing"
)

func TestKey(t *testing.T) {
	if got := Key("FindAll"); got != "FindAll" {
		t.Fatalf("expected FindAll, got %q", got)
	}
	if got := Key("FindPage", 2, 5); got != "FindPage::2::5" {
		t.Fatalf("expected FindPage::2::5, got %q", got)
	}
	if Key("FindPage", 1, 5) == Key("FindPage", 1, 50) {
		t.Fatalf("distinct args must produce distinct keys")
	}
}

func TestRegion_FetchesOnceThenServesCached(t *testing.T) {
	r := NewRegion[int]()
	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return 41 + calls, nil
	}

	v1, err := r.GetOrFetch(context.Background(), "k", fetch)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	v2, err := r.GetOrFetch(context.Background(), "k", fetch)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected 1 underlying fetch, got %d", calls)
	}
	if v1 != 42 || v2 != 42 {
		t.Fatalf("expected cached 42/42, got %d/%d", v1, v2)
	}
}

func TestRegion_ErrorIsNotCached(t *testing.T) {
	r := NewRegion[string]()
	boom := errors.New("boom")
	calls := 0

	_, err := r.GetOrFetch(context.Background(), "k", func(ctx context.Context) (string, error) {
		calls++
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, err := r.GetOrFetch(context.Background(), "k", func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("expected retry to succeed, got (%q,%v)", v, err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", calls)
	}
}

func TestRegion_EvictAndClear(t *testing.T) {
	r := NewRegion[int]()
	fetch := func(v int) FetchFn[int] {
		return func(ctx context.Context) (int, error) { return v, nil }
	}

	_, _ = r.GetOrFetch(context.Background(), "a", fetch(1))
	_, _ = r.GetOrFetch(context.Background(), "b", fetch(2))
	if r.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Len())
	}

	r.Evict("a")
	if r.Len() != 1 {
		t.Fatalf("expected 1 entry after evict, got %d", r.Len())
	}

	v, _ := r.GetOrFetch(context.Background(), "a", fetch(10))
	if v != 10 {
		t.Fatalf("evicted key should refetch, got %d", v)
	}

	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("expected empty region after clear, got %d", r.Len())
	}
}
