package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"myHousePrice/domain"
)

// LoadFeatureSchema reads the ordered column-name list the model was trained
// on. The file is a JSON array of strings exported by the training pipeline.
// A missing or empty schema is fatal at startup, never a per-request error.
func LoadFeatureSchema(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigurationError{Artifact: path, Err: err}
	}

	var columns []string
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, &domain.ConfigurationError{
			Artifact: path,
			Err:      fmt.Errorf("parse feature schema: %w", err),
		}
	}

	if len(columns) == 0 {
		return nil, &domain.ConfigurationError{
			Artifact: path,
			Err:      errors.New("feature schema is empty"),
		}
	}

	return columns, nil
}
