package ratelimit

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	l := NewLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("Allow() call %d = false, want true", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("Allow() over limit = true, want false")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := NewLimiter(time.Hour, 1)

	if !l.Allow("1.2.3.4") {
		t.Fatal("Allow() first key = false, want true")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("Allow() second key = false, want true")
	}
}

func TestWindowResets(t *testing.T) {
	l := NewLimiter(time.Hour, 1)
	current := time.Now()
	l.now = func() time.Time { return current }

	if !l.Allow("1.2.3.4") {
		t.Fatal("Allow() = false, want true")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("Allow() within window = true, want false")
	}

	current = current.Add(time.Hour + time.Second)
	if !l.Allow("1.2.3.4") {
		t.Error("Allow() after window = false, want true")
	}
}

func TestZeroMaxDisablesLimiting(t *testing.T) {
	l := NewLimiter(time.Hour, 0)

	for i := 0; i < 100; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatal("Allow() with max 0 = false, want true")
		}
	}
}
