package pricing

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"myHousePrice/domain"
)

var testSchema = []string{
	"building_age", "main_area", "balcony_area", "floor", "total_floors",
	"has_parking", "has_elevator",
	"district_臺北市內湖區", "district_臺北市士林區",
	"building_type_住宅大樓", "building_type_公寓",
	"main_use_住家用", "main_use_商業用",
}

func newTestAligner(t *testing.T) *FeatureAligner {
	t.Helper()
	a, err := NewFeatureAligner(testSchema)
	if err != nil {
		t.Fatalf("NewFeatureAligner: %v", err)
	}
	return a
}

func TestAlignFullCase(t *testing.T) {
	a := newTestAligner(t)

	fv, err := a.Align(domain.RawCase{
		"district":      "臺北市內湖區",
		"building_type": "住宅大樓",
		"main_use":      "住家用",
		"building_age":  20,
		"main_area":     30,
		"balcony_area":  5,
		"floor":         8,
		"total_floors":  15,
		"has_parking":   1,
		"has_elevator":  1,
	})
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	if !reflect.DeepEqual(fv.Columns, testSchema) {
		t.Fatalf("columns = %v, want schema order", fv.Columns)
	}

	want := []float64{20, 30, 5, 8, 15, 1, 1, 1, 0, 1, 0, 1, 0}
	if !reflect.DeepEqual(fv.Values, want) {
		t.Fatalf("values = %v, want %v", fv.Values, want)
	}
}

func TestAlignEmptyCase(t *testing.T) {
	a := newTestAligner(t)

	fv, err := a.Align(domain.RawCase{})
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	if len(fv.Values) != len(testSchema) {
		t.Fatalf("got %d values, want %d", len(fv.Values), len(testSchema))
	}
	for i, v := range fv.Values {
		if v != 0 {
			t.Errorf("column %s = %v, want 0", fv.Columns[i], v)
		}
	}
}

func TestAlignUnknownCategoryMatchesOmitted(t *testing.T) {
	a := newTestAligner(t)

	unknown, err := a.Align(domain.RawCase{"district": "火星區", "floor": 3})
	if err != nil {
		t.Fatalf("Align unknown: %v", err)
	}

	omitted, err := a.Align(domain.RawCase{"floor": 3})
	if err != nil {
		t.Fatalf("Align omitted: %v", err)
	}

	if !reflect.DeepEqual(unknown, omitted) {
		t.Fatalf("unknown category vector %v differs from omitted %v", unknown.Values, omitted.Values)
	}
}

func TestAlignIgnoresUnrecognizedAttributes(t *testing.T) {
	a := newTestAligner(t)

	fv, err := a.Align(domain.RawCase{"floor": 3, "swimming_pool": "large"})
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	want, _ := a.Align(domain.RawCase{"floor": 3})
	if !reflect.DeepEqual(fv, want) {
		t.Fatalf("unrecognized attribute changed the vector: %v", fv.Values)
	}
}

func TestAlignInvalidNumericValue(t *testing.T) {
	a := newTestAligner(t)

	_, err := a.Align(domain.RawCase{"building_age": "twenty"})
	if err == nil {
		t.Fatal("expected error for non-numeric building_age")
	}

	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want InvalidInputError", err)
	}
	if invalid.Attribute != "building_age" {
		t.Fatalf("offending attribute = %q, want building_age", invalid.Attribute)
	}
}

func TestAlignNumericCoercions(t *testing.T) {
	a := newTestAligner(t)

	fv, err := a.Align(domain.RawCase{
		"building_age": json.Number("20"),
		"main_area":    "30.5",
		"has_parking":  true,
		"has_elevator": false,
		"floor":        int64(8),
	})
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	checks := map[string]float64{
		"building_age": 20,
		"main_area":    30.5,
		"has_parking":  1,
		"has_elevator": 0,
		"floor":        8,
	}
	for col, want := range checks {
		for i, name := range fv.Columns {
			if name == col && fv.Values[i] != want {
				t.Errorf("%s = %v, want %v", col, fv.Values[i], want)
			}
		}
	}
}

func TestNewFeatureAlignerEmptySchema(t *testing.T) {
	_, err := NewFeatureAligner(nil)
	if err == nil {
		t.Fatal("expected error for empty schema")
	}

	var cfgErr *domain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want ConfigurationError", err)
	}
}
