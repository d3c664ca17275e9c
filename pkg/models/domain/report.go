package domain

import "github.com/shopspring/decimal"

// Report represents a complete income statement report for one company
type Report struct {
	Title    string
	Company  string
	Currency string
	Sections []ReportSection
	Verdict  Verdict
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail represents a single amount line within a section
type ReportDetail struct {
	Name        string
	Value       decimal.Decimal
	Unit        string
	Description string
}

// Lines returns every detail of the report in section order.
func (r *Report) Lines() []ReportDetail {
	var lines []ReportDetail
	for _, s := range r.Sections {
		lines = append(lines, s.Details...)
	}
	return lines
}
