package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/export"
)

// Run executes the reports command. With an ID it exports the stored
// report; without one it lists stored reports.
func (c *ReportsCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gapscan.ErrorMessage(err))
			return err
		}
		return export.Write(deps.Stdout, report, c.Format)
	}

	filter := gapscan.ReportFilter{Limit: c.Limit}
	if c.Mode != "" {
		filter.Mode = &c.Mode
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gapscan.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tSUBJECT\tGAPS\tCREATED")
	for _, r := range reports {
		subject := r.PrimaryURL
		if r.Mode == gapscan.ModePlan {
			subject = r.Title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Mode, subject, len(r.Gaps), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
