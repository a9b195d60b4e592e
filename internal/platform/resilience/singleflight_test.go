package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "result", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if val != "result" {
				t.Errorf("unexpected value: %v", val)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected one execution, got %d", got)
	}
}

func TestSingleFlight_SequentialCallsRunSeparately(t *testing.T) {
	var g SingleFlight
	var counter int32

	for i := 0; i < 3; i++ {
		_, err, shared := g.Do("key", func() (any, error) {
			atomic.AddInt32(&counter, 1)
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shared {
			t.Fatal("sequential call should not be shared")
		}
	}

	if counter != 3 {
		t.Fatalf("expected 3 executions, got %d", counter)
	}
}
