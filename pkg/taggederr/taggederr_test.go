package taggederr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew_Stamps(t *testing.T) {
	t.Parallel()
	e := New("NotFoundError", "user missing")

	if e.Tag() != "NotFoundError" {
		t.Fatalf("expected tag NotFoundError, got %q", e.Tag())
	}
	if e.Message() != "user missing" {
		t.Fatalf("expected message 'user missing', got %q", e.Message())
	}
	if e.Id().String() == "" {
		t.Fatalf("expected a stamped id")
	}
	if e.CreatedAt().IsZero() {
		t.Fatalf("expected a stamped creation time")
	}
}

func TestError_Format(t *testing.T) {
	t.Parallel()
	if got := New("ParseError", "bad input").Error(); got != "ParseError: bad input" {
		t.Fatalf("unexpected error text: %q", got)
	}
	if got := New("ParseError", "").Error(); got != "ParseError" {
		t.Fatalf("unexpected error text without message: %q", got)
	}
}

func TestIs_MatchesOnTagOnly(t *testing.T) {
	t.Parallel()
	a := New("TimeoutError", "fetch took too long")
	b := New("TimeoutError", "different message")
	c := New("ParseError", "fetch took too long")

	if !errors.Is(a, b) {
		t.Fatalf("expected same-tag errors to match")
	}
	if errors.Is(a, c) {
		t.Fatalf("expected different tags not to match")
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	t.Parallel()
	cause := fmt.Errorf("connection reset")
	e := Wrap("NetworkError", "request failed", cause)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to stay reachable through errors.Is")
	}
	if e.Unwrap() != cause {
		t.Fatalf("expected Unwrap to return the cause")
	}
}

func TestHasTag(t *testing.T) {
	t.Parallel()
	inner := New("DbError", "row not found")
	outer := Wrap("RepositoryError", "lookup failed", inner)
	plain := fmt.Errorf("wrapped: %w", outer)

	if !HasTag(plain, "RepositoryError") {
		t.Fatalf("expected outer tag to be found")
	}
	if !HasTag(plain, "DbError") {
		t.Fatalf("expected inner tag to be found through the chain")
	}
	if HasTag(plain, "TimeoutError") {
		t.Fatalf("did not expect an absent tag to match")
	}
	if HasTag(nil, "DbError") {
		t.Fatalf("nil error should carry no tag")
	}
}
