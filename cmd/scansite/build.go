package main

import (
	"fmt"

	"github.com/tkowalczyk/scansite"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scansite.ErrorMessage(err))
		return err
	}

	if err := deps.SiteWriter.WriteCorpus(deps.Ctx, corpus); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scansite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Built %d documents from %d pages into %s\n",
		corpus.Stats.Documents, corpus.Stats.Pages, deps.Config.OutputDir)

	if report := corpus.Report; report != nil {
		if skipped := len(report.Skipped); skipped > 0 {
			fmt.Fprintf(deps.Stdout, "Skipped %d unparseable page files\n", skipped)
		}
		if dupes := len(report.DuplicateText); dupes > 0 {
			fmt.Fprintf(deps.Stdout, "Flagged %d pages with duplicate text\n", dupes)
		}
	}

	return nil
}
