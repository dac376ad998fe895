package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "avantika_admin/internal/adapters/redis"
	"avantika_admin/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_SetGetDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	in := []domain.Place{{ID: "p1", Title: "Ujjain", Price: 500, IsActive: true}}
	if err := c.Set(ctx, "collection:places", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.Place
	ok, err := c.Get(ctx, "collection:places", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].Title != "Ujjain" || out[0].Price != 500 {
		t.Fatalf("round trip mangled: %+v", out)
	}

	if err := c.Del(ctx, "collection:places"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "collection:places", &out)
	if err != nil {
		t.Fatalf("get after del: %v", err)
	}
	if ok {
		t.Fatalf("expected miss after del")
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c := newCache(t)
	var out []domain.Blog
	ok, err := c.Get(context.Background(), "collection:blogs", &out)
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}
