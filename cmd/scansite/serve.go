package main

import (
	"fmt"

	scanhttp "github.com/tkowalczyk/scansite/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := deps.Server
	if server == nil {
		server = scanhttp.NewServer(deps.Builder, deps.Logger)
		server.Addr = deps.Config.Addr
		if c.Addr != "" {
			server.Addr = c.Addr
		}
		server.SiteDir = deps.Config.OutputDir
	}

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Serving on %s\n", server.URL())

	<-deps.Ctx.Done()
	return nil
}
