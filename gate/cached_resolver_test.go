package gate_test

import (
	"context"
	"testing"
	"time"

	"github.com/pemmasanikrishna/remo/gate"
)

func TestCachedResolver_CachesProfile(t *testing.T) {
	inner := gate.NewStaticResolver[uint]()
	inner.Set(1, gate.NewStaticProfile(1, "rep"))

	cached := gate.NewCachedResolver[uint](inner, 5*time.Minute)

	p1, err := cached.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Name() != "rep" {
		t.Errorf("expected 'rep', got '%s'", p1.Name())
	}

	// Change the underlying profile; the cached value must win.
	inner.Set(1, gate.NewStaticProfile(1, "admin"))

	p2, err := cached.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Name() != "rep" {
		t.Errorf("expected cached 'rep', got '%s'", p2.Name())
	}
}

func TestCachedResolver_Invalidate(t *testing.T) {
	inner := gate.NewStaticResolver[uint]()
	inner.Set(1, gate.NewStaticProfile(1, "rep"))

	cached := gate.NewCachedResolver[uint](inner, 5*time.Minute)
	if _, err := cached.Resolve(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner.Set(1, gate.NewStaticProfile(1, "alumni"))
	cached.Invalidate(1)

	p, err := cached.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "alumni" {
		t.Errorf("expected fresh 'alumni' after invalidation, got '%s'", p.Name())
	}
}

func TestCachedResolver_TTLExpiry(t *testing.T) {
	inner := gate.NewStaticResolver[uint]()
	inner.Set(1, gate.NewStaticProfile(1, "rep"))

	cached := gate.NewCachedResolver[uint](inner, time.Millisecond)
	if _, err := cached.Resolve(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner.Set(1, gate.NewStaticProfile(1, "mentor"))
	time.Sleep(5 * time.Millisecond)

	p, err := cached.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "mentor" {
		t.Errorf("expected 'mentor' after ttl expiry, got '%s'", p.Name())
	}
}
