package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/tkowalczyk/scansite/build"
	"github.com/tkowalczyk/scansite/fs"
	scanslog "github.com/tkowalczyk/scansite/slog"
	"github.com/tkowalczyk/scansite/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath overrides the config file location. Set before calling
	// Run(); the --config flag takes precedence.
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: os.Getenv("SCANSITE_CONFIG"),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scansite"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scansite --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	config, err := yaml.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Config: config,
		Builder: &build.Builder{
			Loader: scanslog.NewLoggingPageLoader(fs.NewLoader(), logger),
			Mappings: &fs.Mappings{
				EntityPath:   config.EntityMappingPath,
				TypePath:     config.TypeMappingPath,
				AnalysesPath: config.AnalysesPath,
			},
			Logger: logger,
			Dir:    config.InputDir,
		},
		SiteWriter: scanslog.NewLoggingCorpusWriter(fs.NewSiteWriter(config.OutputDir), logger),
	}

	return kongCtx.Run(deps)
}
