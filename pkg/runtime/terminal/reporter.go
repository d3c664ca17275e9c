package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const reportTemplate = `
{{.Title}}
{{separator}}
{{range .Lines}}{{.Name}}: {{.Unit}} {{money .Value}}
{{end}}
Conclusion: {{.Verdict.Conclusion}}
`

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	funcMap := template.FuncMap{
		"money":     func(v decimal.Decimal) string { return v.StringFixed(2) },
		"separator": func() string { return strings.Repeat("-", 50) },
	}
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate)),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	if err := c.tmpl.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
