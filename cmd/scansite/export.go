package main

import (
	"fmt"

	"github.com/tkowalczyk/scansite"
	"github.com/tkowalczyk/scansite/sqlite"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scansite.ErrorMessage(err))
		return err
	}

	exporter := deps.Exporter
	if exporter == nil {
		path := deps.Config.DBPath
		if c.DB != "" {
			path = c.DB
		}

		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer db.Close()
		exporter = sqlite.NewCorpusService(db)
	}

	if err := exporter.WriteCorpus(deps.Ctx, corpus); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scansite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents\n", len(corpus.Documents))
	return nil
}
