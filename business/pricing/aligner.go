package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"myHousePrice/domain"
)

// categoricalAttrs are the attributes that were one-hot encoded during
// training. Each expands to a single "<attr>_<value>" indicator column at
// request time; the trained vocabulary itself lives in the feature schema.
var categoricalAttrs = []string{"district", "building_type", "main_use"}

// FeatureAligner maps a raw case onto the exact column set the model was
// trained on. The schema is immutable after construction, so a single
// aligner is safe for concurrent use.
type FeatureAligner struct {
	schema []string
	index  map[string]int
}

func NewFeatureAligner(schema []string) (*FeatureAligner, error) {
	if len(schema) == 0 {
		return nil, &domain.ConfigurationError{
			Artifact: "feature schema",
			Err:      errors.New("empty column list"),
		}
	}

	index := make(map[string]int, len(schema))
	for i, col := range schema {
		index[col] = i
	}

	return &FeatureAligner{
		schema: append([]string(nil), schema...),
		index:  index,
	}, nil
}

// Schema returns a copy of the trained column order.
func (a *FeatureAligner) Schema() []string {
	return append([]string(nil), a.schema...)
}

// Align produces the feature vector for one raw case. The result always has
// exactly the schema's columns in schema order: indicator columns for
// categories absent from the case stay 0, and category values the model never
// saw have no schema column and fall away. A missing categorical attribute is
// treated as the empty category, never an error.
func (a *FeatureAligner) Align(raw domain.RawCase) (domain.FeatureVector, error) {
	values := make([]float64, len(a.schema))

	// one active indicator per categorical attribute
	for _, attr := range categoricalAttrs {
		value := ""
		if v, ok := raw[attr]; ok && v != nil {
			value = fmt.Sprint(v)
		}
		if i, ok := a.index[attr+"_"+value]; ok {
			values[i] = 1
		}
	}

	for name, v := range raw {
		if isCategoricalAttr(name) {
			continue
		}
		i, ok := a.index[name]
		if !ok {
			// unrecognized attribute, accepted and ignored
			continue
		}
		num, err := coerceNumeric(v)
		if err != nil {
			return domain.FeatureVector{}, &domain.InvalidInputError{Attribute: name, Err: err}
		}
		values[i] = num
	}

	return domain.FeatureVector{Columns: a.Schema(), Values: values}, nil
}

func isCategoricalAttr(name string) bool {
	for _, attr := range categoricalAttrs {
		if name == attr {
			return true
		}
	}
	return false
}

func coerceNumeric(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return f, nil
	case nil:
		return 0, errors.New("value is null")
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
