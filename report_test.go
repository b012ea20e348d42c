package gapscan_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/stretchr/testify/assert"
)

func TestReport_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		report   gapscan.Report
		wantCode string
	}{
		{
			name: "valid update",
			report: gapscan.Report{
				Mode:           gapscan.ModeUpdate,
				PrimaryURL:     "https://example.com/a",
				CompetitorURLs: []string{"https://example.com/b"},
			},
		},
		{
			name: "valid plan",
			report: gapscan.Report{
				Mode:           gapscan.ModePlan,
				Title:          "Winter Guide",
				CompetitorURLs: []string{"https://example.com/b"},
			},
		},
		{
			name:     "update without primary URL",
			report:   gapscan.Report{Mode: gapscan.ModeUpdate, CompetitorURLs: []string{"x"}},
			wantCode: gapscan.EINVALID,
		},
		{
			name:     "plan without title",
			report:   gapscan.Report{Mode: gapscan.ModePlan, CompetitorURLs: []string{"x"}},
			wantCode: gapscan.EINVALID,
		},
		{
			name:     "unknown mode",
			report:   gapscan.Report{Mode: "audit", CompetitorURLs: []string{"x"}},
			wantCode: gapscan.EINVALID,
		},
		{
			name:     "no competitors",
			report:   gapscan.Report{Mode: gapscan.ModeUpdate, PrimaryURL: "x"},
			wantCode: gapscan.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.report.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, gapscan.ErrorCode(err))
			}
		})
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&gapscan.Page{URL: "https://example.com"}).Validate())
	assert.Equal(t, gapscan.EINVALID, gapscan.ErrorCode((&gapscan.Page{}).Validate()))
}
