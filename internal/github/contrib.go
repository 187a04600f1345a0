package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/fchimpan/git-heatmap/internal/calendar"
)

// Day is a single day entry from GitHub's Contribution Calendar.
// date is returned as "YYYY-MM-DD" (GitHub GraphQL).
type Day struct {
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
	ContributionCount int    `json:"contributionCount"`
}

type Week struct {
	ContributionDays []Day `json:"contributionDays"`
}

type Calendar struct {
	Weeks []Week `json:"weeks"`
}

// GitHub launched on 2008-04-10; earlier years hold no contributions.
// Ref: https://github.blog/news-insights/we-launched/
const launchYear = 2008

func validateYear(year int) error {
	if year < launchYear {
		return fmt.Errorf("year must be %d or later (GitHub launch)", launchYear)
	}
	return nil
}

// yearRange is a calendar year as GraphQL from/to bounds. One year fits
// within the API's 1-year contributionsCollection limit.
func yearRange(year int) (from, to time.Time) {
	from = time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}

// graphqlRequest sends a GraphQL request to GitHub's API using GITHUB_TOKEN.
func graphqlRequest(ctx context.Context, query string, variables map[string]any, result any) error {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return &AuthError{Message: "GITHUB_TOKEN or GH_TOKEN environment variable is not set"}
	}

	payload := map[string]any{
		"query":     query,
		"variables": variables,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.github.com/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var gqlResp struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	if err := json.Unmarshal(gqlResp.Data, result); err != nil {
		return fmt.Errorf("failed to parse data: %w", err)
	}

	return nil
}

// useTokenClient returns true if we should use the token-based client.
func useTokenClient() bool {
	return os.Getenv("GITHUB_TOKEN") != "" || os.Getenv("GH_TOKEN") != ""
}

const viewerQuery = `
query($from: DateTime!, $to: DateTime!) {
  viewer {
    login
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            weekday
            contributionCount
          }
        }
      }
    }
  }
}`

const userQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    login
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            weekday
            contributionCount
          }
        }
      }
    }
  }
}`

type viewerResponse struct {
	Viewer struct {
		Login                   string `json:"login"`
		ContributionsCollection struct {
			ContributionCalendar Calendar `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"viewer"`
}

type userResponse struct {
	User *struct {
		Login                   string `json:"login"`
		ContributionsCollection struct {
			ContributionCalendar Calendar `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// FetchViewerYear returns the logged-in user's login and contribution
// calendar for one calendar year.
func FetchViewerYear(ctx context.Context, year int) (string, Calendar, error) {
	if err := validateYear(year); err != nil {
		return "", Calendar{}, err
	}
	from, to := yearRange(year)

	var resp viewerResponse
	if useTokenClient() {
		vars := map[string]any{
			"from": from.Format(time.RFC3339),
			"to":   to.Format(time.RFC3339),
		}
		if err := graphqlRequest(ctx, viewerQuery, vars, &resp); err != nil {
			return "", Calendar{}, err
		}
	} else {
		client, err := api.DefaultGraphQLClient()
		if err != nil {
			return "", Calendar{}, err
		}
		vars := map[string]any{"from": from, "to": to}
		if err := client.DoWithContext(ctx, viewerQuery, vars, &resp); err != nil {
			return "", Calendar{}, err
		}
	}
	return resp.Viewer.Login, resp.Viewer.ContributionsCollection.ContributionCalendar, nil
}

// FetchUserYear returns the given user's login and contribution calendar
// for one calendar year.
//
// Note: This still uses the GitHub GraphQL API and typically requires
// authentication.
func FetchUserYear(ctx context.Context, login string, year int) (string, Calendar, error) {
	if login == "" {
		return "", Calendar{}, fmt.Errorf("user login must not be empty")
	}
	if err := validateYear(year); err != nil {
		return "", Calendar{}, err
	}
	from, to := yearRange(year)

	var resp userResponse
	if useTokenClient() {
		vars := map[string]any{
			"login": login,
			"from":  from.Format(time.RFC3339),
			"to":    to.Format(time.RFC3339),
		}
		if err := graphqlRequest(ctx, userQuery, vars, &resp); err != nil {
			if isGraphQLUserNotFound(err) {
				return "", Calendar{}, &UserNotFoundError{Login: login, cause: err}
			}
			return "", Calendar{}, err
		}
	} else {
		client, err := api.DefaultGraphQLClient()
		if err != nil {
			return "", Calendar{}, err
		}
		vars := map[string]any{"login": login, "from": from, "to": to}
		if err := client.DoWithContext(ctx, userQuery, vars, &resp); err != nil {
			if isGraphQLUserNotFound(err) {
				return "", Calendar{}, &UserNotFoundError{Login: login, cause: err}
			}
			return "", Calendar{}, err
		}
	}
	if resp.User == nil || resp.User.Login == "" {
		return "", Calendar{}, &UserNotFoundError{Login: login}
	}
	return resp.User.Login, resp.User.ContributionsCollection.ContributionCalendar, nil
}

const dateLayout = "2006-01-02"

// CountsFromCalendar flattens a contribution calendar into per-day counts
// for the target year. A date GitHub returns that does not parse is a
// hard error; we never guess a day.
func CountsFromCalendar(cal Calendar, year int) (calendar.Counts, error) {
	counts := make(calendar.Counts)
	for _, week := range cal.Weeks {
		for _, day := range week.ContributionDays {
			t, err := time.Parse(dateLayout, day.Date)
			if err != nil {
				return nil, fmt.Errorf("malformed contribution date %q: %w", day.Date, err)
			}
			d := calendar.DateOf(t)
			if d.Year != year || day.ContributionCount == 0 {
				continue
			}
			counts[d] += day.ContributionCount
		}
	}
	return counts, nil
}
