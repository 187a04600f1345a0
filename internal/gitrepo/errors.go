package gitrepo

import (
	"errors"
	"fmt"
)

// NotARepositoryError indicates the given path could not be opened as a
// git repository. Typed so the CLI can skip unrelated hints.
type NotARepositoryError struct {
	Path  string
	cause error
}

func (e *NotARepositoryError) Error() string {
	if e == nil || e.Path == "" {
		return "not a git repository"
	}
	return fmt.Sprintf("%q is not a git repository", e.Path)
}

func (e *NotARepositoryError) Unwrap() error { return e.cause }

func IsNotARepository(err error) bool {
	var e *NotARepositoryError
	return errors.As(err, &e)
}

// NoCommitsError indicates the repository has no commits reachable from
// the current branch tip.
type NoCommitsError struct {
	Path  string
	cause error
}

func (e *NoCommitsError) Error() string {
	if e == nil || e.Path == "" {
		return "no commits reachable from HEAD"
	}
	return fmt.Sprintf("no commits reachable from HEAD in %q", e.Path)
}

func (e *NoCommitsError) Unwrap() error { return e.cause }

func IsNoCommits(err error) bool {
	var e *NoCommitsError
	return errors.As(err, &e)
}
