package middleware

import (
	"strings"
	"testing"

	"warehouse-backend/pkg/id"
)

func TestValidReqID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{id.NewID32(), true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"not-an-id", false},
		{"", false},
		{strings.Repeat("g", 32), false},
	}
	for _, tt := range tests {
		if got := validReqID(tt.in); got != tt.want {
			t.Fatalf("validReqID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildKey(t *testing.T) {
	k := buildKey("POST", "/requests/:id/approve", "admin", "abc")
	if k != "idemp:post:/requests/:id/approve:admin:abc" {
		t.Fatalf("key = %q", k)
	}
}

func TestBodyHash_Stable(t *testing.T) {
	a := bodyHash([]byte(`{"x":1}`))
	b := bodyHash([]byte(`{"x":1}`))
	c := bodyHash([]byte(`{"x":2}`))
	if a != b {
		t.Fatalf("hash not stable")
	}
	if a == c {
		t.Fatalf("different bodies must not collide trivially")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d", len(a))
	}
}
