package main

import (
	"fmt"

	"github.com/fwojciec/presrag"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, presrag.ScrapeEntryFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presrag.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents scraped yet. Run 'presrag scrape <url>' first.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Scraped documents (%d shown):\n\n", len(entries))
	for i, entry := range entries {
		title := entry.Title
		if title == "" {
			title = entry.Filename
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s (%s)\n     %s\n", i+1, title, entry.Date, entry.URL)
	}

	return nil
}
