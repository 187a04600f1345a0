package gitrepo

import (
	"context"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"

	"github.com/fchimpan/git-heatmap/internal/calendar"
)

// Repository wraps a libgit2 repository handle.
type Repository struct {
	repo *git2go.Repository
	path string
}

// Open opens the git repository at path (the working directory itself or
// any directory inside it).
func Open(path string) (*Repository, error) {
	repo, err := git2go.OpenRepositoryExtended(path, 0, "")
	if err != nil {
		return nil, &NotARepositoryError{Path: path, cause: err}
	}
	return &Repository{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened with.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the underlying libgit2 handle.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// CommitDays walks history from HEAD and resolves each commit's committer
// timestamp to its UTC calendar day. The caller filters by year; this
// keeps the walk year-agnostic and cheap to test.
func (r *Repository) CommitDays(ctx context.Context) ([]calendar.Date, error) {
	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}
	defer walk.Free()

	// PushHead fails on an unborn branch, i.e. a repository with no
	// commits reachable from HEAD.
	if err := walk.PushHead(); err != nil {
		return nil, &NoCommitsError{Path: r.path, cause: err}
	}

	var days []calendar.Date
	iterErr := walk.Iterate(func(commit *git2go.Commit) bool {
		if ctx.Err() != nil {
			return false
		}
		days = append(days, calendar.DateOf(commit.Committer().When))
		commit.Free()
		return true
	})
	if iterErr != nil {
		return nil, fmt.Errorf("walk commits: %w", iterErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return days, nil
}
