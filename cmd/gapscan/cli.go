package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/analyze"
	"github.com/fwojciec/gapscan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Config   gapscan.Config
	Logger   *slog.Logger
	Analyzer *analyze.Analyzer
	Reports  gapscan.ReportService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB         string `help:"SQLite database path" env:"GAPSCAN_DB"`
	ConfigFile string `name:"config" help:"JSON config file overriding the built-in rule tables" env:"GAPSCAN_CONFIG"`
	Verbose    bool   `short:"v" help:"Enable debug logging"`

	Analyze AnalyzeCmd `cmd:"" help:"Compare an existing article against competitor pages"`
	Plan    PlanCmd    `cmd:"" help:"Rank competitor section coverage for a planned article"`
	Reports ReportsCmd `cmd:"" help:"List or show stored reports"`
	Serve   ServeCmd   `cmd:"" help:"Run the analysis HTTP API"`
}

// AnalyzeCmd is the "analyze" subcommand (update mode).
type AnalyzeCmd struct {
	URL        string   `arg:"" help:"Primary article URL"`
	Competitor []string `short:"c" name:"competitor" required:"" help:"Competitor URL (repeatable)"`
	Format     string   `short:"f" default:"markdown" enum:"csv,json,markdown" help:"Output format"`
}

// PlanCmd is the "plan" subcommand (new-article mode).
type PlanCmd struct {
	Title      string   `arg:"" help:"Planned article title"`
	Competitor []string `short:"c" name:"competitor" required:"" help:"Competitor URL (repeatable)"`
	Format     string   `short:"f" default:"markdown" enum:"csv,json,markdown" help:"Output format"`
}

// ReportsCmd is the "reports" subcommand.
type ReportsCmd struct {
	ID     string `arg:"" optional:"" help:"Report ID to show; omit to list"`
	Mode   string `help:"Filter list by mode (update or plan)"`
	Limit  int    `default:"20" help:"Maximum reports to list"`
	Format string `short:"f" default:"markdown" enum:"csv,json,markdown" help:"Output format when showing a report"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"GAPSCAN_ADDR" help:"Listen address"`
}
