package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/presrag"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ presrag.ScrapeStore = (*ScrapeService)(nil)

// ScrapeService implements presrag.ScrapeStore using SQLite.
type ScrapeService struct {
	db *DB
}

// NewScrapeService creates a new ScrapeService.
func NewScrapeService(db *DB) *ScrapeService {
	return &ScrapeService{db: db}
}

// Record inserts a manifest entry for a scraped document.
func (s *ScrapeService) Record(ctx context.Context, entry *presrag.ScrapeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.ScrapedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrape_log (id, url, title, date, filename, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.URL, entry.Title, entry.Date, entry.Filename, entry.ContentHash,
		entry.ScrapedAt.Format(time.RFC3339))

	return err
}

// Seen reports whether a document URL has already been recorded.
func (s *ScrapeService) Seen(ctx context.Context, url string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM scrape_log WHERE url = ?
	`, url).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindEntries retrieves manifest entries matching the filter, most recent
// first.
func (s *ScrapeService) FindEntries(ctx context.Context, filter presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, date, filename, content_hash, scraped_at FROM scrape_log WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY scraped_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*presrag.ScrapeEntry
	for rows.Next() {
		var entry presrag.ScrapeEntry
		var scrapedAt string

		if err := rows.Scan(&entry.ID, &entry.URL, &entry.Title, &entry.Date,
			&entry.Filename, &entry.ContentHash, &scrapedAt); err != nil {
			return nil, err
		}

		entry.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
