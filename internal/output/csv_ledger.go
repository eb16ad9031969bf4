package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVLedgerFormatter writes one row per ledger month. The projection summary
// is not included; use the json or yaml formatter for that.
type CSVLedgerFormatter struct{}

func (c CSVLedgerFormatter) Name() string      { return "csv" }
func (c CSVLedgerFormatter) Extension() string { return "csv" }

func (c CSVLedgerFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "ContributionApplied", "InterestEarned", "CumulativeBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range result.MonthlyEvolution {
		record := []string{
			strconv.Itoa(row.Month),
			fixed(row.ContributionApplied),
			fixed(row.InterestEarned),
			fixed(row.CumulativeBalance),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func fixed(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }
