package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/investment-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// buildTestResult is 1000 up front, 100 a month at 0.5% for three months.
func buildTestResult() *domain.SimulationResult {
	return &domain.SimulationResult{
		ProjectionResult: domain.ProjectionResult{
			FinalAmount:         1316.58,
			TotalInvested:       1300,
			AccumulatedInterest: 16.58,
		},
		MonthlyEvolution: []domain.MonthlyLedgerEntry{
			{Month: 1, ContributionApplied: 0, InterestEarned: 5, CumulativeBalance: 1005},
			{Month: 2, ContributionApplied: 100, InterestEarned: 5.53, CumulativeBalance: 1110.53},
			{Month: 3, ContributionApplied: 100, InterestEarned: 6.05, CumulativeBalance: 1216.58},
		},
	}
}

func TestConsoleFormatterSummaryAndLedger(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"Final Amount:         $1316.58",
		"Total Invested:       $1300.00",
		"Accumulated Interest: $16.58",
		"MONTHLY EVOLUTION\n",
		"$1216.58",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in console output:\n%s", want, content)
		}
	}
}

func TestConsoleFormatterBRL(t *testing.T) {
	res := buildTestResult()
	res.FinalAmount = 1234567.891
	out, err := ConsoleFormatter{Currency: CurrencyBRL}.Format(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "R$ 1.234.567,89") {
		t.Fatalf("expected pt-BR formatted amount, got:\n%s", out)
	}
}

func TestConsoleFormatterPagination(t *testing.T) {
	out, err := ConsoleFormatter{Page: 2, PerPage: 2}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "(page 2 of 2, 3 months)") {
		t.Fatalf("expected page heading, got:\n%s", content)
	}
	if strings.Contains(content, "$1005.00") {
		t.Fatalf("month 1 should not be on page 2:\n%s", content)
	}
	if !strings.Contains(content, "$1216.58") {
		t.Fatalf("month 3 should be on page 2:\n%s", content)
	}

	out, err = ConsoleFormatter{Page: 5, PerPage: 2}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "(no rows)") {
		t.Fatalf("expected empty page marker, got:\n%s", out)
	}
}

func TestCSVLedgerFormatterFull(t *testing.T) {
	out, err := CSVLedgerFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "ledger.full.golden"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(out) != string(want) {
		t.Fatalf("csv ledger changed\n--- have ---\n%s\n--- want ---\n%s", out, want)
	}
}

func TestJSONFormatterUsesAPIFieldNames(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"finalAmount", "totalInvested", "accumulatedInterest", "monthlyEvolution"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in %s", key, out)
		}
	}
}

func TestYAMLFormatterRoundTrip(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back domain.SimulationResult
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if back.FinalAmount != 1316.58 || len(back.MonthlyEvolution) != 3 || back.MonthlyEvolution[1].InterestEarned != 5.53 {
		t.Fatalf("unexpected decoded result: %+v", back)
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console", "console_prefix.golden", ConsoleFormatter{}},
		{"csv", "csv_prefix.golden", CSVLedgerFormatter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
		{"json", "json_prefix.golden", JSONFormatter{}},
		{"yaml", "yaml_prefix.golden", YAMLFormatter{}},
	}

	res := buildTestResult()
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(res)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestHTMLFormatterRendersLedger(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, `<div class="value" id="final-amount">$1316.58</div>`) {
		t.Fatalf("expected final amount card in HTML output")
	}
	if strings.Count(content, "<tr><td>") != 3 {
		t.Fatalf("expected one table row per month")
	}
	if !strings.Contains(content, "[1005,1110.53,1216.58]") {
		t.Fatalf("expected chart data in HTML output")
	}
}

func TestHTMLFormatterBRLSetsLanguage(t *testing.T) {
	out, err := HTMLFormatter{Currency: CurrencyBRL}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, `<html lang="pt-BR">`) || !strings.Contains(content, "R$ 1.316,58") {
		t.Fatalf("expected pt-BR report")
	}
}

func TestGetFormatterByName(t *testing.T) {
	for alias, want := range map[string]string{
		"console":     "console",
		"TEXT":        "console",
		"json-pretty": "json",
		"csv-ledger":  "csv",
		"html-report": "html",
		" yml ":       "yaml",
	} {
		f := GetFormatterByName(alias)
		if f == nil || f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %v, want %s", alias, f, want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatalf("expected nil for unknown format")
	}
}

func TestLookupFormatterUnknown(t *testing.T) {
	_, err := LookupFormatter("pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console, csv, html, json, yaml") {
		t.Fatalf("expected available formatters in error, got %v", err)
	}
}

func TestWriteFormattedTimestampedName(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	path, err := WriteFormatted(CSVLedgerFormatter{}, buildTestResult(), "")
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	if !strings.HasPrefix(path, "investment_simulation_") || !strings.HasSuffix(path, ".csv") {
		t.Fatalf("unexpected file name %q", path)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterFuncAdapter(t *testing.T) {
	f := FormatterFunc{ID: "months", Ext: "txt", F: func(r *domain.SimulationResult) ([]byte, error) {
		return []byte(strings.Repeat("#", len(r.MonthlyEvolution))), nil
	}}
	path, err := WriteFormatted(f, buildTestResult(), filepath.Join(t.TempDir(), "months.txt"))
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "###" || f.Name() != "months" || f.Extension() != "txt" {
		t.Fatalf("unexpected adapter output %q", data)
	}
}
