package cache_test

import (
	"testing"
	"time"

	"sukaza_backend/internals/helpers/cache"
)

func TestCache_GetSetAndTTL(t *testing.T) {
	c := cache.New(30 * time.Millisecond)

	if _, ok := c.Get("invoices:list"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Set("invoices:list", []string{"a", "b"})
	v, ok := c.Get("invoices:list")
	if !ok {
		t.Fatalf("expected hit after Set")
	}
	if got := v.([]string); len(got) != 2 {
		t.Fatalf("unexpected cached value: %v", got)
	}

	time.Sleep(40 * time.Millisecond)
	if _, ok := c.Get("invoices:list"); ok {
		t.Fatalf("expected entry to expire after TTL")
	}
}

func TestCache_DeclaredInvalidation(t *testing.T) {
	c := cache.New(time.Minute)
	c.Declare("invoice.create", "invoices:list", "reports:summary")

	c.Set("invoices:list", 1)
	c.Set("reports:summary", 2)
	c.Set("templates:list", 3)

	c.Invalidate("invoice.create")

	if _, ok := c.Get("invoices:list"); ok {
		t.Errorf("invoices:list should have been invalidated")
	}
	if _, ok := c.Get("reports:summary"); ok {
		t.Errorf("reports:summary should have been invalidated")
	}
	if _, ok := c.Get("templates:list"); !ok {
		t.Errorf("templates:list must survive an unrelated mutation")
	}
}

func TestCache_PrefixInvalidation(t *testing.T) {
	c := cache.New(time.Minute)
	c.Declare("document.upload", "documents.tree:*")

	c.Set("documents.tree:contract:", 1)
	c.Set("documents.tree:manual:abc", 2)
	c.Set("documents.list", 3)

	c.Invalidate("document.upload")

	if _, ok := c.Get("documents.tree:contract:"); ok {
		t.Errorf("prefixed entry should have been invalidated")
	}
	if _, ok := c.Get("documents.tree:manual:abc"); ok {
		t.Errorf("prefixed entry should have been invalidated")
	}
	if _, ok := c.Get("documents.list"); !ok {
		t.Errorf("non-matching key must survive")
	}
}

func TestCache_UnknownMutationIsNoop(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("k", "v")
	c.Invalidate("never.declared")
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("unknown mutation must not drop entries")
	}
}
