package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/investment-simulator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with the summary, a
// balance chart and the full ledger.
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	balances := make([]float64, len(result.MonthlyEvolution))
	for i, row := range result.MonthlyEvolution {
		balances[i] = row.CumulativeBalance
	}

	data := struct {
		*domain.SimulationResult
		Money    func(float64) string
		Lang     string
		Balances []float64
	}{
		SimulationResult: result,
		Money:            func(v float64) string { return formatAmount(v, h.Currency) },
		Lang:             "en",
		Balances:         balances,
	}
	if h.Currency == CurrencyBRL {
		data.Lang = "pt-BR"
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
