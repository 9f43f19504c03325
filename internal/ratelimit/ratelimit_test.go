package ratelimit

import (
	"testing"
	"time"
)

func TestInMemoryLimiter_BurstThenBlock(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	if !l.Allow(1) || !l.Allow(1) {
		t.Fatal("burst of 2 must be allowed")
	}
	if l.Allow(1) {
		t.Error("third call inside the window must be blocked")
	}
}

func TestInMemoryLimiter_UsersAreIndependent(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)

	if !l.Allow(1) {
		t.Fatal("first user must be allowed")
	}
	if !l.Allow(2) {
		t.Error("a fresh user must not inherit another user's spent budget")
	}
	if l.Allow(1) {
		t.Error("first user is out of budget")
	}
}
