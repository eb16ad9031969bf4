package output

import (
	"fmt"
	"io"

	"github.com/rpgo/investment-simulator/internal/domain"
)

// Options carries the presentation settings some formatters honour.
type Options struct {
	Currency string // usd or brl
	Page     int    // 0 means the whole ledger
	PerPage  int
}

// Configure returns f with opts applied when f supports them.
func Configure(f Formatter, opts Options) Formatter {
	switch v := f.(type) {
	case ConsoleFormatter:
		v.Currency, v.Page, v.PerPage = opts.Currency, opts.Page, opts.PerPage
		return v
	case HTMLFormatter:
		v.Currency = opts.Currency
		return v
	}
	return f
}

// Render formats result with the named formatter and writes it to w.
func Render(w io.Writer, result *domain.SimulationResult, format string, opts Options) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := Configure(f, opts).Format(result)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport formats result with the named formatter and writes it to
// path (a timestamped file when empty). It returns the path written.
func GenerateReport(result *domain.SimulationResult, format string, opts Options, path string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(Configure(f, opts), result, path)
}
