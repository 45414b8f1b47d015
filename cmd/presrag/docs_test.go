package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/presrag"
	main "github.com/fwojciec/presrag/cmd/presrag"
	"github.com/fwojciec/presrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists manifest entries", func(t *testing.T) {
		t.Parallel()

		entries := &mock.ScrapeStore{
			FindEntriesFn: func(_ context.Context, filter presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error) {
				return []*presrag.ScrapeEntry{
					{
						Title: "Inaugural Address",
						Date:  "2021-01-20",
						URL:   "https://www.presidency.ucsb.edu/documents/inaugural",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		cmd := &main.DocsCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Inaugural Address")
		assert.Contains(t, stdout.String(), "2021-01-20")
		assert.Contains(t, stdout.String(), "https://www.presidency.ucsb.edu/documents/inaugural")
	})

	t.Run("passes limit and offset through the filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter presrag.ScrapeEntryFilter
		entries := &mock.ScrapeStore{
			FindEntriesFn: func(_ context.Context, filter presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		cmd := &main.DocsCmd{Limit: 10, Offset: 5}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 10, gotFilter.Limit)
		assert.Equal(t, 5, gotFilter.Offset)
	})

	t.Run("prints hint when nothing scraped", func(t *testing.T) {
		t.Parallel()

		entries := &mock.ScrapeStore{
			FindEntriesFn: func(context.Context, presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		cmd := &main.DocsCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No documents scraped yet")
	})

	t.Run("returns store errors", func(t *testing.T) {
		t.Parallel()

		entries := &mock.ScrapeStore{
			FindEntriesFn: func(context.Context, presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error) {
				return nil, presrag.Errorf(presrag.EINTERNAL, "database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: entries,
		}

		cmd := &main.DocsCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "database locked")
	})
}
