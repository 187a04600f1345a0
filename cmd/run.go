package cmd

import (
	"context"
	"fmt"

	"github.com/fchimpan/git-heatmap/internal/calendar"
	"github.com/fchimpan/git-heatmap/internal/github"
	"github.com/fchimpan/git-heatmap/internal/gitrepo"
)

type options struct {
	RepoPath    string
	User        string
	UseGitHub   bool
	Year        int
	Interactive bool
}

func run(ctx context.Context, deps Deps, opts options) error {
	if deps.CollectRepoDays == nil {
		return fmt.Errorf("deps.CollectRepoDays is nil")
	}
	if deps.FetchUserYear == nil {
		return fmt.Errorf("deps.FetchUserYear is nil")
	}
	if deps.FetchViewerYear == nil {
		return fmt.Errorf("deps.FetchViewerYear is nil")
	}
	if deps.Render == nil {
		return fmt.Errorf("deps.Render is nil")
	}
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}

	var (
		title string
		rg    calendar.RenderGrid
	)

	if opts.UseGitHub {
		var (
			login string
			cal   github.Calendar
			err   error
		)
		if opts.User != "" {
			login, cal, err = deps.FetchUserYear(ctx, opts.User, opts.Year)
		} else {
			login, cal, err = deps.FetchViewerYear(ctx, opts.Year)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch GitHub contributions: %w", err)
		}
		counts, err := github.CountsFromCalendar(cal, opts.Year)
		if err != nil {
			return err
		}
		title = login
		rg = calendar.BuildYearCounts(counts, opts.Year, calendar.DefaultScale())
	} else {
		path, days, err := deps.CollectRepoDays(ctx, opts.RepoPath)
		if err != nil {
			return err
		}
		title = path
		rg = calendar.BuildYear(days, opts.Year, calendar.DefaultScale())
	}

	if opts.Interactive {
		return deps.RunTUI(title, rg)
	}

	fmt.Fprintf(deps.Stdout, "%s · %d\n\n", title, opts.Year)
	return deps.Render(deps.Stdout, rg)
}

func defaultCollectRepoDays(ctx context.Context, path string) (string, []calendar.Date, error) {
	repo, err := gitrepo.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer repo.Free()

	days, err := repo.CommitDays(ctx)
	if err != nil {
		return "", nil, err
	}
	return path, days, nil
}
