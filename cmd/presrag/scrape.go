package main

import (
	"fmt"

	"github.com/fwojciec/presrag"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d documents across %d pages (%d skipped, %d failed).\n",
		result.Saved, result.Pages, result.Skipped, result.Failed)
	return nil
}
