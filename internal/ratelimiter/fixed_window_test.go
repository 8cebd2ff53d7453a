package ratelimiter

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		if !ok {
			t.Fatalf("request %d denied within limit", i+1)
		}
	}
	ok, retry := rl.Allow("10.0.0.1")
	if ok {
		t.Fatal("request over limit allowed")
	}
	if retry <= 0 || retry > time.Minute {
		t.Errorf("retry-after %v outside (0, window]", retry)
	}
}

func TestClientsAreIndependent(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("first client first request denied")
	}
	if ok, _ := rl.Allow("10.0.0.2"); !ok {
		t.Fatal("second client should have its own window")
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("first client second request should be denied")
	}
}

func TestWindowExpiry(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("first request denied")
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("second request in window allowed")
	}
	time.Sleep(30 * time.Millisecond)
	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("request after window expiry denied")
	}
}
