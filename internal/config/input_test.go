package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Formats(t *testing.T) {
	want := &domain.SimulationParameters{InitialPrincipal: 10000, MonthlyContribution: 500.5, MonthlyRatePercent: 1.25, TermMonths: 24}

	cases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "params.yaml",
			content: "initial_principal: 10000\n" +
				"monthly_contribution: 500.50\n" +
				"monthly_rate_percent: 1.25\n" +
				"term_months: 24\n",
		},
		{
			name: "toml",
			file: "params.toml",
			content: "initial_principal = 10000\n" +
				"monthly_contribution = 500.5\n" +
				"monthly_rate_percent = 1.25\n" +
				"term_months = 24\n",
		},
		{
			name:    "json",
			file:    "params.json",
			content: `{"initialPrincipal": 10000, "monthlyContribution": 500.5, "monthlyRatePercent": 1.25, "termMonths": 24}`,
		},
		{
			name:    "unknown extension falls back to json",
			file:    "params.txt",
			content: `{"initialPrincipal": 10000, "monthlyContribution": 500.5, "monthlyRatePercent": 1.25, "termMonths": 24}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, tc.file, tc.content)
			got, err := NewInputParser().LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	params, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, params)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "bad.yaml", "initial_principal: [unclosed\n")

	params, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, params)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	path := writeTemp(t, "params.yaml", "initial_principal: 100\nmonthly_contribution: 10\nmonthly_rate_percent: 25\n")

	params, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Nil(t, params)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, FieldMonthlyRatePercent, verrs[0].Field)
	assert.Equal(t, FieldTermMonths, verrs[1].Field)
	assert.Equal(t, "field is required", verrs[1].Message)
}

func TestCreateExampleParameters(t *testing.T) {
	example := NewInputParser().CreateExampleParameters()
	require.NotNil(t, example)
	assert.NoError(t, ValidateParameters(*example))
	assert.Equal(t, 12, example.TermMonths)
}

func TestLoadInputFromFile_PartialInput(t *testing.T) {
	path := writeTemp(t, "partial.yaml", "initial_principal: 2500\nterm_months: 36\n")

	input, err := NewInputParser().LoadInputFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, input.InitialPrincipal)
	assert.Equal(t, 2500.0, *input.InitialPrincipal)
	assert.Nil(t, input.MonthlyContribution)
	assert.Nil(t, input.MonthlyRatePercent)
	assert.Equal(t, 36.0, *input.TermMonths)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleParameters()

	for _, name := range []string{"params.yaml", "params.toml", "params.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, parser.SaveToFile(example, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, example, loaded)
		})
	}
}
