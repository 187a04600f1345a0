package gitrepo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNotARepositoryError_Matching(t *testing.T) {
	t.Parallel()

	base := &NotARepositoryError{Path: "/tmp/nowhere", cause: errors.New("could not find repository")}
	wrapped := fmt.Errorf("open source: %w", base)

	if !IsNotARepository(base) {
		t.Fatalf("expected IsNotARepository to be true")
	}
	if !IsNotARepository(wrapped) {
		t.Fatalf("expected IsNotARepository to be true for wrapped error")
	}
	if IsNotARepository(errors.New("something else")) {
		t.Fatalf("expected IsNotARepository to be false for unrelated error")
	}
	if !strings.Contains(base.Error(), "/tmp/nowhere") {
		t.Fatalf("error message should name the path, got %q", base.Error())
	}
}

func TestNoCommitsError_Matching(t *testing.T) {
	t.Parallel()

	base := &NoCommitsError{Path: "."}
	wrapped := fmt.Errorf("collect days: %w", base)

	if !IsNoCommits(base) {
		t.Fatalf("expected IsNoCommits to be true")
	}
	if !IsNoCommits(wrapped) {
		t.Fatalf("expected IsNoCommits to be true for wrapped error")
	}
	if IsNoCommits(base.Unwrap()) {
		t.Fatalf("the cause alone should not match")
	}
}
