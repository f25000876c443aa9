// Package testutil holds assertion helpers shared by the package tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want with cmp.Diff and fails the test with
// the diff on mismatch.
func AssertEqual(t *testing.T, got, want interface{}, format string, args ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf(format+": mismatch (-want +got):\n%s", append(args, diff)...)
	}
}

// AssertNoError fails the test when err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertPanics runs fn and fails the test unless it panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	fn()
}
