package main

import (
	"fmt"

	"github.com/tkowalczyk/scansite"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scansite.ErrorMessage(err))
		return err
	}

	stats := corpus.Stats
	fmt.Fprintf(deps.Stdout, "Build:              %s\n", corpus.BuildID)
	fmt.Fprintf(deps.Stdout, "Pages:              %d\n", stats.Pages)
	fmt.Fprintf(deps.Stdout, "Documents:          %d\n", stats.Documents)
	fmt.Fprintf(deps.Stdout, "Filename-grouped:   %d\n", stats.FallbackGrouped)

	for _, cat := range scansite.Categories() {
		fmt.Fprintf(deps.Stdout, "Unique %-12s %d\n", string(cat)+":", stats.UniqueEntities[cat])
	}

	return nil
}
