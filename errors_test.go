package trash

import (
	"errors"
	"testing"
)

func TestWrapStatusWithoutCause(t *testing.T) {
	err := wrapStatus(StatusNameFailed, nil)
	if statusOf(err) != StatusNameFailed {
		t.Fatalf("statusOf() = %v, want StatusNameFailed", statusOf(err))
	}
	if err.Error() != StatusMessage(StatusNameFailed) {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestWrapStatusWithCauseUnwraps(t *testing.T) {
	cause := errors.New("disk exploded")
	err := wrapStatus(StatusMkdirFailed, cause)

	if statusOf(err) != StatusMkdirFailed {
		t.Fatalf("statusOf() = %v, want StatusMkdirFailed", statusOf(err))
	}

	var se *statusError
	if !errors.As(err, &se) {
		t.Fatal("expected errors.As to find *statusError")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the original cause")
	}
}

func TestStatusOfNilIsOK(t *testing.T) {
	if statusOf(nil) != StatusOK {
		t.Fatal("statusOf(nil) must be StatusOK")
	}
}
