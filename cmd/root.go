package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fchimpan/git-heatmap/internal/calendar"
	"github.com/fchimpan/git-heatmap/internal/github"
	"github.com/fchimpan/git-heatmap/internal/render"
)

type Deps struct {
	CollectRepoDays func(ctx context.Context, path string) (string, []calendar.Date, error)
	FetchUserYear   func(ctx context.Context, login string, year int) (string, github.Calendar, error)
	FetchViewerYear func(ctx context.Context, year int) (string, github.Calendar, error)
	Render          func(w io.Writer, rg calendar.RenderGrid) error
	RunTUI          func(title string, rg calendar.RenderGrid) error
	Now             func() time.Time
	Stdout          io.Writer
	Stderr          io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		CollectRepoDays: defaultCollectRepoDays,
		FetchUserYear:   github.FetchUserYear,
		FetchViewerYear: github.FetchViewerYear,
		Render:          render.Heatmap,
		RunTUI:          defaultRunTUI,
		Now:             time.Now,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	var repoPath string
	var year int
	var user string
	var useGitHub bool
	var interactive bool

	c := &cobra.Command{
		Use:          "git-heatmap",
		Short:        "Render a GitHub-style commit heatmap for one year in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user != "" && repoPath != "." {
				return fmt.Errorf("--repo and --user are mutually exclusive")
			}
			if year == 0 {
				// "Current year" is a CLI concern; the grid engine only
				// ever sees an explicit year.
				year = deps.Now().UTC().Year()
			}

			if err := run(cmd.Context(), deps, options{
				RepoPath:    repoPath,
				User:        user,
				UseGitHub:   useGitHub || user != "",
				Year:        year,
				Interactive: interactive,
			}); err != nil {
				if github.IsAuthError(err) {
					fmt.Fprintln(deps.Stderr, "hint: set GITHUB_TOKEN or log in with `gh auth login`")
				}
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&repoPath, "repo", "r", ".", "path to a local git repository")
	c.Flags().IntVarP(&year, "year", "y", 0, "target year (default: current year)")
	c.Flags().StringVarP(&user, "user", "u", "", "GitHub username: use their contribution calendar instead of a local repo")
	c.Flags().BoolVarP(&useGitHub, "github", "g", false, "use the authenticated GitHub user's contribution calendar")
	c.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the heatmap interactively")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
