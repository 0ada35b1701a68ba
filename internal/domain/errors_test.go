package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_UnwrapAndIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := ErrStoreFailure(cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if !Is(err, "store_failure") {
		t.Fatalf("expected code store_failure")
	}
	if Is(err, "other") {
		t.Fatalf("unexpected code match")
	}
	if Is(errors.New("plain"), "store_failure") {
		t.Fatalf("plain error should not match")
	}
}

func TestError_MessageFormatting(t *testing.T) {
	t.Parallel()

	err := ErrEmailExists()
	if err.Message != "Email already exists" {
		t.Fatalf("got %q", err.Message)
	}
	if err.Error() == "" {
		t.Fatalf("expected formatted error string")
	}

	wrapped := ErrProfileWrite("customers", "42", fmt.Errorf("boom"))
	if wrapped.Meta["table"] != "customers" || wrapped.Meta["user_id"] != "42" {
		t.Fatalf("meta not carried: %+v", wrapped.Meta)
	}
}

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", "customer"},
		{"  ", "customer"},
		{"VENDOR", "vendor"},
		{"Customer", "customer"},
		{"staff", "staff"},
	}
	for _, c := range cases {
		if got := NormalizeRole(c.in); got != c.want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
