package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/tkowalczyk/scansite"
	scanhttp "github.com/tkowalczyk/scansite/http"
	"github.com/tkowalczyk/scansite/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config yaml.Config

	// Builder yields the memoized corpus.
	Builder scanhttp.CorpusSource

	// SiteWriter writes the generated site.
	SiteWriter scansite.CorpusWriter

	// Exporter overrides the SQLite export target when set; export opens
	// a database at the configured path otherwise.
	Exporter scansite.CorpusWriter

	// Server overrides the preview server when set; serve constructs one
	// from the config otherwise.
	Server *scanhttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Path to the YAML config file" type:"path"`

	Build  BuildCmd  `cmd:"" help:"Assemble documents and write the site"`
	Serve  ServeCmd  `cmd:"" help:"Serve the preview API and generated site"`
	Stats  StatsCmd  `cmd:"" help:"Print corpus statistics"`
	Export ExportCmd `cmd:"" help:"Export the corpus to a SQLite database"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	DB string `help:"SQLite database path (overrides config)"`
}
