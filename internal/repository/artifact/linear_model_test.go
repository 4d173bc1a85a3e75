package artifact

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"myHousePrice/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFeatureSchema(t *testing.T) {
	path := writeFile(t, "model_features.json", `["building_age","main_area","district_臺北市內湖區"]`)

	schema, err := LoadFeatureSchema(path)
	if err != nil {
		t.Fatalf("LoadFeatureSchema: %v", err)
	}
	if len(schema) != 3 || schema[0] != "building_age" {
		t.Fatalf("schema = %v", schema)
	}
}

func TestLoadFeatureSchemaMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := LoadFeatureSchema(path)
	if err == nil {
		t.Fatal("expected error for missing schema artifact")
	}

	var cfgErr *domain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want ConfigurationError", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name the artifact path", err)
	}
}

func TestLoadFeatureSchemaEmpty(t *testing.T) {
	path := writeFile(t, "model_features.json", `[]`)

	_, err := LoadFeatureSchema(path)
	var cfgErr *domain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError for empty schema", err)
	}
}

func TestLinearModelPredictAndExplain(t *testing.T) {
	path := writeFile(t, "model.json", `{
		"intercept": 5.0,
		"coefficients": {"building_age": -0.5, "main_area": 1.2, "district_臺北市內湖區": 8.0},
		"feature_means": {"building_age": 25, "main_area": 28, "district_臺北市內湖區": 0.15}
	}`)
	schema := []string{"building_age", "main_area", "district_臺北市內湖區"}

	m, err := NewLinearModel(path, schema)
	if err != nil {
		t.Fatalf("NewLinearModel: %v", err)
	}

	fv := domain.FeatureVector{Columns: schema, Values: []float64{20, 30, 1}}

	price, err := m.Predict(fv)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := 5.0 + -0.5*20 + 1.2*30 + 8.0*1
	if math.Abs(price-want) > 1e-9 {
		t.Fatalf("price = %v, want %v", price, want)
	}

	attr, err := m.Explain(fv)
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if len(attr.Values) != len(schema) {
		t.Fatalf("attribution has %d values, want %d", len(attr.Values), len(schema))
	}

	sum := attr.Base
	for _, v := range attr.Values {
		sum += v
	}
	if math.Abs(sum-price) > 1e-9 {
		t.Fatalf("base %v + attributions = %v, does not reconcile with prediction %v", attr.Base, sum, price)
	}
}

func TestLinearModelMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	_, err := NewLinearModel(path, []string{"building_age"})
	var cfgErr *domain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name the artifact path", err)
	}
}

func TestLinearModelMissingCoefficient(t *testing.T) {
	path := writeFile(t, "model.json", `{"intercept": 1, "coefficients": {}, "feature_means": {}}`)

	_, err := NewLinearModel(path, []string{"building_age"})
	var cfgErr *domain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError for schema/model mismatch", err)
	}
}

func TestLinearModelShapeMismatch(t *testing.T) {
	path := writeFile(t, "model.json", `{
		"intercept": 1,
		"coefficients": {"building_age": 2},
		"feature_means": {"building_age": 10}
	}`)

	m, err := NewLinearModel(path, []string{"building_age"})
	if err != nil {
		t.Fatalf("NewLinearModel: %v", err)
	}

	_, err = m.Predict(domain.FeatureVector{Columns: []string{"a", "b"}, Values: []float64{1, 2}})
	var consistency *domain.ConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("error = %v, want ConsistencyError", err)
	}
}
