package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RawCase is the caller-supplied property description before feature alignment.
// Categorical attributes (district, building_type, main_use) are free-form
// strings; everything else is numeric, with booleans as 0/1.
type RawCase map[string]any

// FeatureVector is the aligned, ordered numeric input the model was trained on.
// Columns always match the trained feature schema exactly, in schema order.
type FeatureVector struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

// Attribution is what the attribution oracle returns for one feature vector:
// an unconditional base value plus one contribution per column, in the same
// order as the vector, with base + sum(values) equal to the prediction.
type Attribution struct {
	Base   float64   `json:"base"`
	Values []float64 `json:"values"`
}

// Explanation is the composed narrative for a single prediction. Immutable
// once returned, built fresh per request.
type Explanation struct {
	BaseValue      float64
	Predicted      float64
	AttributionSum float64
	Header         string
	Lines          []string
	Trailer        string
}

// Rendered flattens the explanation into ordered, independently renderable lines.
func (e Explanation) Rendered() []string {
	out := make([]string, 0, len(e.Lines)+2)
	out = append(out, e.Header)
	out = append(out, e.Lines...)
	out = append(out, e.Trailer)
	return out
}

// Valuation is the caller-facing response for one estimate.
type Valuation struct {
	PredictedPrice float64  `json:"predicted_price"`
	BaseValue      float64  `json:"base_value"`
	Explanation    []string `json:"explanation"`
}

// CREATE TABLE public.valuation_records (
//     id              UUID PRIMARY KEY,
//     input           JSONB,
//     predicted_price NUMERIC,
//     base_value      NUMERIC,
//     explanation     TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type ValuationRecord struct {
	ID             string            `gorm:"primaryKey;type:uuid" json:"id"`
	Input          datatypes.JSONMap `gorm:"column:input;type:jsonb" json:"input"`
	PredictedPrice float64           `gorm:"column:predicted_price;type:numeric" json:"predicted_price"`
	BaseValue      float64           `gorm:"column:base_value;type:numeric" json:"base_value"`
	Explanation    string            `gorm:"column:explanation;type:text" json:"explanation"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ValuationRecord) TableName() string {
	return "valuation_records"
}
