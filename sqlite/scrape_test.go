package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/presrag"
	"github.com/fwojciec/presrag/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var count int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scrape_log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/test.db")
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		assert.Equal(t, "wal", journalMode)
	})
}

func TestScrapeService_Record(t *testing.T) {
	t.Parallel()

	t.Run("records entry with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		entry := &presrag.ScrapeEntry{
			URL:         "https://www.presidency.ucsb.edu/documents/example-address",
			Title:       "Example Address",
			Date:        "2024-01-15",
			Filename:    "2024-01-15_Example Address.txt",
			ContentHash: "abc123",
		}

		err := svc.Record(ctx, entry)
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID, "ID should be generated")
		assert.False(t, entry.ScrapedAt.IsZero(), "ScrapedAt should be set")
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)

		err := svc.Record(context.Background(), &presrag.ScrapeEntry{})
		require.Error(t, err)
		assert.Equal(t, presrag.EINVALID, presrag.ErrorCode(err))
	})

	t.Run("rejects duplicate URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		entry := &presrag.ScrapeEntry{
			URL:      "https://www.presidency.ucsb.edu/documents/dup",
			Filename: "0000-00-00_dup.txt",
		}
		require.NoError(t, svc.Record(ctx, entry))

		dup := &presrag.ScrapeEntry{
			URL:      "https://www.presidency.ucsb.edu/documents/dup",
			Filename: "0000-00-00_dup.txt",
		}
		err := svc.Record(ctx, dup)
		require.Error(t, err)
	})
}

func TestScrapeService_Seen(t *testing.T) {
	t.Parallel()

	t.Run("returns false for unknown URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)

		seen, err := svc.Seen(context.Background(), "https://example.com/unknown")
		require.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("returns true after recording", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		url := "https://www.presidency.ucsb.edu/documents/seen-test"
		require.NoError(t, svc.Record(ctx, &presrag.ScrapeEntry{
			URL:      url,
			Filename: "0000-00-00_seen-test.txt",
		}))

		seen, err := svc.Seen(ctx, url)
		require.NoError(t, err)
		assert.True(t, seen)
	})
}

func TestScrapeService_FindEntries(t *testing.T) {
	t.Parallel()

	t.Run("returns all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		entry := &presrag.ScrapeEntry{
			URL:         "https://www.presidency.ucsb.edu/documents/inaugural",
			Title:       "Inaugural Address",
			Date:        "2021-01-20",
			Filename:    "2021-01-20_Inaugural Address.txt",
			ContentHash: "deadbeef",
		}
		require.NoError(t, svc.Record(ctx, entry))

		entries, err := svc.FindEntries(ctx, presrag.ScrapeEntryFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 1)

		found := entries[0]
		assert.Equal(t, entry.ID, found.ID)
		assert.Equal(t, entry.URL, found.URL)
		assert.Equal(t, entry.Title, found.Title)
		assert.Equal(t, entry.Date, found.Date)
		assert.Equal(t, entry.Filename, found.Filename)
		assert.Equal(t, entry.ContentHash, found.ContentHash)
		assert.False(t, found.ScrapedAt.IsZero())
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		for _, url := range []string{
			"https://example.com/doc-one",
			"https://example.com/doc-two",
		} {
			require.NoError(t, svc.Record(ctx, &presrag.ScrapeEntry{
				URL:      url,
				Filename: "0000-00-00_doc.txt",
			}))
		}

		url := "https://example.com/doc-two"
		entries, err := svc.FindEntries(ctx, presrag.ScrapeEntryFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, url, entries[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.Record(ctx, &presrag.ScrapeEntry{
				URL:      "https://example.com/doc-" + string(rune('a'+i)),
				Filename: "0000-00-00_doc.txt",
			}))
		}

		entries, err := svc.FindEntries(ctx, presrag.ScrapeEntryFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		entries, err = svc.FindEntries(ctx, presrag.ScrapeEntryFilter{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)

		entries, err := svc.FindEntries(context.Background(), presrag.ScrapeEntryFilter{})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
