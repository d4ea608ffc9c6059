package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/regscout"
	main "github.com/fwojciec/regscout/cmd/regscout"
	"github.com/fwojciec/regscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists searches with ID, time, kind, and query", func(t *testing.T) {
		t.Parallel()

		history := &mock.SearchHistoryService{
			FindSearchesFn: func(_ context.Context, _ regscout.SearchFilter) ([]*regscout.Search, error) {
				return []*regscout.Search{
					{
						ID:        "search-123",
						Query:     "latest health insurance circulars",
						Kind:      regscout.ResultRanked,
						CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "search-456",
						Query:     "advertising guidelines",
						Kind:      regscout.ResultPerfectMatch,
						CreatedAt: time.Date(2026, 8, 19, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			History: history,
		}

		cmd := &main.HistoryCmd{Limit: 20}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "search-123")
		assert.Contains(t, output, "search-456")
		assert.Contains(t, output, "latest health insurance circulars")
		assert.Contains(t, output, "perfect_match")
		assert.Contains(t, output, "2026-08-20 10:00")
	})

	t.Run("passes filter options through", func(t *testing.T) {
		t.Parallel()

		var got regscout.SearchFilter
		history := &mock.SearchHistoryService{
			FindSearchesFn: func(_ context.Context, filter regscout.SearchFilter) ([]*regscout.Search, error) {
				got = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			History: history,
		}

		cmd := &main.HistoryCmd{Query: "advertising guidelines", Limit: 5, Offset: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Query)
		assert.Equal(t, "advertising guidelines", *got.Query)
		assert.Equal(t, 5, got.Limit)
		assert.Equal(t, 10, got.Offset)
	})

	t.Run("shows helpful message when no searches exist", func(t *testing.T) {
		t.Parallel()

		history := &mock.SearchHistoryService{
			FindSearchesFn: func(_ context.Context, _ regscout.SearchFilter) ([]*regscout.Search, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			History: history,
		}

		cmd := &main.HistoryCmd{Limit: 20}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No searches")
	})

	t.Run("returns error when FindSearches fails", func(t *testing.T) {
		t.Parallel()

		history := &mock.SearchHistoryService{
			FindSearchesFn: func(_ context.Context, _ regscout.SearchFilter) ([]*regscout.Search, error) {
				return nil, errors.New("database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			History: history,
		}

		cmd := &main.HistoryCmd{Limit: 20}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
