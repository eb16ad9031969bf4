package output

import (
	"encoding/json"

	"github.com/rpgo/investment-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the simulation result as pretty-printed JSON,
// using the same field names as the HTTP API.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// YAMLFormatter serializes the simulation result as YAML with snake_case keys.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	return yaml.Marshal(result)
}
