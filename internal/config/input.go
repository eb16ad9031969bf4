package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/investment-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of simulation parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads simulation parameters from a YAML, TOML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	input, err := ip.LoadInputFromFile(filename)
	if err != nil {
		return nil, err
	}

	params, err := input.Resolve()
	if err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return &params, nil
}

// LoadInputFromFile decodes a parameter file without validating it, so that
// callers can fill in missing fields before calling Resolve.
func (ip *InputParser) LoadInputFromFile(filename string) (ParameterInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return ParameterInput{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input ParameterInput
	if err := decodeByExtension(filename, data, &input); err != nil {
		return ParameterInput{}, err
	}
	return input, nil
}

// SaveToFile writes parameters in the format implied by the extension.
func (ip *InputParser) SaveToFile(p *domain.SimulationParameters, filename string) error {
	data, err := encodeByExtension(filename, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleParameters returns the parameters used throughout the docs:
// 10,000 up front, 500 a month, 1% a month for a year.
func (ip *InputParser) CreateExampleParameters() *domain.SimulationParameters {
	return &domain.SimulationParameters{
		InitialPrincipal:    10000,
		MonthlyContribution: 500,
		MonthlyRatePercent:  1,
		TermMonths:          12,
	}
}

// decodeByExtension picks the decoder from the file extension. Unknown
// extensions are read as JSON when the content is an object, YAML otherwise.
func decodeByExtension(filename string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("failed to parse JSON: %w", err)
			}
			return nil
		}
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse %s (tried YAML): %w", filename, err)
		}
	}
	return nil
}

// encodeByExtension is the inverse of decodeByExtension; unknown extensions
// are written as YAML.
func encodeByExtension(filename string, v any) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return []byte(sb.String()), nil
	case ".json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(b, '\n'), nil
	default:
		b, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return b, nil
	}
}
