package main

import (
	"fmt"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/export"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.AnalyzeUpdate(deps.Ctx, c.URL, c.Competitor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gapscan.ErrorMessage(err))
		return err
	}

	return export.Write(deps.Stdout, report, c.Format)
}
