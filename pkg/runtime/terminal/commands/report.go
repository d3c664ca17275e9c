package commands

import (
	"fmt"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/de-tools/profit-report/pkg/runtime/terminal/export"
	"github.com/de-tools/profit-report/pkg/services/config"
	"github.com/de-tools/profit-report/pkg/services/input"
	"github.com/de-tools/profit-report/pkg/services/statement"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	inputsPath string
	profile    string
	format     string
	currency   string
	xlsxPath   string
	session    *Session
	reporters  map[string]func(cmd *cobra.Command) ReportHandler
}

// NewReportCmd builds the command that collects figures and prints the income statement.
func NewReportCmd(session *Session, reporters map[string]func(cmd *cobra.Command) ReportHandler) *cobra.Command {
	rc := &ReportCmd{session: session, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "profit-report",
		Short: "Single-period income statement and profit/loss verdict",
		Long: "Prompts for a company's trading figures, computes COGS, gross profit, " +
			"operating profit, EBIT, net profit before tax, tax and EAIT, and prints the report.",
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	cmd.Flags().StringVar(&rc.inputsPath, "inputs", "", "Read figures from an INI inputs file instead of prompting")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Profile (section) of the inputs file to report on")
	cmd.Flags().StringVar(&rc.format, "format", "", "Output format: text or table (default from settings)")
	cmd.Flags().StringVar(&rc.currency, "currency", "", "Currency label shown next to amounts (default from settings)")
	cmd.Flags().StringVar(&rc.xlsxPath, "xlsx", "", "Also export the report to this XLSX file")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	settings, err := rc.settings()
	if err != nil {
		return err
	}

	newReporter, ok := rc.reporters[settings.Format]
	if !ok {
		return fmt.Errorf("no reporter registered for format %q", settings.Format)
	}

	var (
		company string
		in      domain.FinancialInputs
	)
	if rc.inputsPath != "" {
		registry, err := input.NewProfileRegistry(rc.inputsPath)
		if err != nil {
			return err
		}
		profile, err := input.ResolveProfile(ctx, registry, rc.profile)
		if err != nil {
			return err
		}
		company, in = profile.Company, profile.Inputs
	} else {
		prompter := input.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), settings.Currency)
		if company, err = prompter.CompanyName(ctx); err != nil {
			return fmt.Errorf("failed to read company name: %w", err)
		}
		if in, err = prompter.Collect(ctx, company); err != nil {
			return err
		}
	}

	st := statement.Compute(in)
	report := statement.BuildReport(company, settings.Currency, in, st)
	logger.Info().
		Str("company", company).
		Str("eait", st.EAIT.StringFixed(2)).
		Str("verdict", report.Verdict.String()).
		Msg("income statement computed")

	if err := newReporter(cmd).Handle(report); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if rc.xlsxPath != "" {
		if err := export.SaveWorkbook(rc.xlsxPath, report); err != nil {
			return err
		}
		logger.Info().Str("path", rc.xlsxPath).Msg("workbook exported")
	}

	return nil
}

// settings applies command-line overrides on top of the loaded settings.
func (rc *ReportCmd) settings() (*config.Settings, error) {
	s := config.Settings{Currency: "BDT", Format: config.FormatText}
	if rc.session != nil && rc.session.Settings != nil {
		s = *rc.session.Settings
	}
	if rc.format != "" {
		s.Format = rc.format
	}
	if rc.currency != "" {
		s.Currency = rc.currency
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
