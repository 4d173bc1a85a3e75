package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"myHousePrice/domain"
)

// linearModelFile is the on-disk artifact exported by the training pipeline:
// a ridge-regression fit plus per-column training means.
type linearModelFile struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	FeatureMeans map[string]float64 `json:"feature_means"`
}

// LinearModel serves predictions and, because the fit is linear, exact
// per-column attributions: base is the model's output at the training means,
// each column contributes weight * (value - mean), and base plus all
// contributions reproduces the prediction to the last bit.
type LinearModel struct {
	schema    []string
	intercept float64
	weights   []float64
	means     []float64
	base      float64
}

func NewLinearModel(path string, schema []string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigurationError{Artifact: path, Err: err}
	}

	var file linearModelFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, &domain.ConfigurationError{
			Artifact: path,
			Err:      fmt.Errorf("parse model artifact: %w", err),
		}
	}

	m := &LinearModel{
		schema:    append([]string(nil), schema...),
		intercept: file.Intercept,
		weights:   make([]float64, len(schema)),
		means:     make([]float64, len(schema)),
	}

	for i, col := range schema {
		w, ok := file.Coefficients[col]
		if !ok {
			return nil, &domain.ConfigurationError{
				Artifact: path,
				Err:      fmt.Errorf("model has no coefficient for schema column %q", col),
			}
		}
		m.weights[i] = w
		m.means[i] = file.FeatureMeans[col]
	}

	m.base = m.intercept
	for i := range m.weights {
		m.base += m.weights[i] * m.means[i]
	}

	return m, nil
}

func (m *LinearModel) Predict(fv domain.FeatureVector) (float64, error) {
	if len(fv.Values) != len(m.schema) {
		return 0, &domain.ConsistencyError{
			Reason: fmt.Sprintf("feature vector has %d values, model expects %d", len(fv.Values), len(m.schema)),
		}
	}

	price := m.intercept
	for i, v := range fv.Values {
		price += m.weights[i] * v
	}
	return price, nil
}

func (m *LinearModel) Explain(fv domain.FeatureVector) (domain.Attribution, error) {
	if len(fv.Values) != len(m.schema) {
		return domain.Attribution{}, &domain.ConsistencyError{
			Reason: fmt.Sprintf("feature vector has %d values, model expects %d", len(fv.Values), len(m.schema)),
		}
	}

	values := make([]float64, len(fv.Values))
	for i, v := range fv.Values {
		values[i] = m.weights[i] * (v - m.means[i])
	}

	return domain.Attribution{Base: m.base, Values: values}, nil
}
