package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgument_MatchesSentinel(t *testing.T) {
	t.Parallel()

	err := InvalidArgument("Name cannot be blank")
	if !errors.Is(err, ErrorInvalidArgument) {
		t.Fatalf("expected errors.Is match on ErrorInvalidArgument, got %v", err)
	}
	if err.Error() != "Name cannot be blank" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestInvalidArgument_MessageSurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("update failed: %w", InvalidArgument("Price cannot be negative"))
	if !errors.Is(err, ErrorInvalidArgument) {
		t.Fatalf("expected wrapped error to match sentinel, got %v", err)
	}

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected errors.As to find ArgumentError in %v", err)
	}
	if argErr.Message != "Price cannot be negative" {
		t.Fatalf("unexpected message: %q", argErr.Message)
	}
}
