package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	store.Set(ctx, "standings:1:0:5", 42)
	value, ok := store.Get(ctx, "standings:1:0:5")
	if !ok {
		t.Fatalf("expected hit after Set")
	}
	if value.(int) != 42 {
		t.Fatalf("expected 42, got %v", value)
	}

	store.Delete(ctx, "standings:1:0:5")
	if _, ok := store.Get(ctx, "standings:1:0:5"); ok {
		t.Fatalf("expected miss after Delete")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "key", "value")
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "standings:1:0:5", 1)
	store.Set(ctx, "standings:1:7:5", 2)
	store.Set(ctx, "captains:1:0", 3)

	store.DeletePrefix(ctx, "standings:1:")

	if _, ok := store.Get(ctx, "standings:1:0:5"); ok {
		t.Fatalf("expected standings keys evicted")
	}
	if _, ok := store.Get(ctx, "standings:1:7:5"); ok {
		t.Fatalf("expected standings keys evicted")
	}
	if _, ok := store.Get(ctx, "captains:1:0"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestStore_GetOrLoadSingleExecution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	var calls int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "key", func(context.Context) (any, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(5 * time.Millisecond)
				return "loaded", nil
			})
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
				return
			}
			if value.(string) != "loaded" {
				t.Errorf("unexpected value %v", value)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected one loader execution, got %d", got)
	}
}
