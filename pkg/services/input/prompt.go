package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Prompter collects the company name and figures from an interactive session.
type Prompter struct {
	scanner  *bufio.Scanner
	writer   io.Writer
	currency string
}

// NewPrompter creates a prompter reading answers from reader and writing prompts to writer
func NewPrompter(reader io.Reader, writer io.Writer, currency string) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		scanner:  bufio.NewScanner(reader),
		writer:   writer,
		currency: currency,
	}
}

func (p *Prompter) CompanyName(_ context.Context) (string, error) {
	return p.ask("Enter the company's name: ")
}

// Collect asks for the ten figures in fixed order. The first answer that does
// not parse aborts the session with an *InvalidNumericInputError.
func (p *Prompter) Collect(ctx context.Context, company string) (domain.FinancialInputs, error) {
	logger := zerolog.Ctx(ctx)
	var in domain.FinancialInputs

	if _, err := fmt.Fprintf(p.writer, "\nEnter financial details for %s:\n", company); err != nil {
		return in, fmt.Errorf("failed to write prompt: %w", err)
	}

	for _, f := range fields {
		prompt := f.prompt + ": "
		if f.amount {
			prompt = fmt.Sprintf("%s (in %s): ", f.prompt, p.currency)
		}

		raw, err := p.ask(prompt)
		if err != nil {
			return in, fmt.Errorf("failed to read %s: %w", f.key, err)
		}

		v, err := ParseAmount(f.key, raw)
		if err != nil {
			return in, err
		}
		f.set(&in, v)
		logger.Debug().Str("field", f.key).Str("value", v.String()).Msg("input captured")
	}

	return in, nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return p.scanner.Text(), nil
}
