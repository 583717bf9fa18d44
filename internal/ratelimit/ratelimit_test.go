package ratelimit

import (
	"testing"
	"time"
)

func TestWaitThrottlesRepeatCalls(t *testing.T) {
	var slept []time.Duration
	th := New(100 * time.Millisecond)
	th.sleep = func(d time.Duration) { slept = append(slept, d) }

	th.Wait("wikipedia")
	if len(slept) != 0 {
		t.Fatalf("first call slept %v, want no sleep", slept)
	}

	th.Wait("wikipedia")
	if len(slept) != 1 {
		t.Fatalf("second call should sleep once, got %v", slept)
	}
	if slept[0] <= 0 || slept[0] > 100*time.Millisecond {
		t.Errorf("sleep = %v, want within (0, 100ms]", slept[0])
	}
}

func TestWaitDifferentProvidersIndependent(t *testing.T) {
	var slept []time.Duration
	th := New(100 * time.Millisecond)
	th.sleep = func(d time.Duration) { slept = append(slept, d) }

	th.Wait("wikipedia")
	th.Wait("archive.ph")
	if len(slept) != 0 {
		t.Errorf("different providers should not block each other, slept %v", slept)
	}
}
