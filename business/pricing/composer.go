package pricing

import (
	"fmt"
	"math"
	"sort"

	"myHousePrice/domain"
)

// reconcileTolerance bounds the allowed floating-point drift between the
// oracle's base + attributions and the model's prediction, in price units.
const reconcileTolerance = 1e-3

const defaultTopN = 8

// ExplanationComposer turns a prediction plus its attribution into a ranked,
// deterministic narrative. Stateless and safe for concurrent use.
type ExplanationComposer struct {
	topN int
}

func NewExplanationComposer(topN int) *ExplanationComposer {
	if topN <= 0 {
		topN = defaultTopN
	}
	return &ExplanationComposer{topN: topN}
}

// Compose ranks columns by absolute attribution (ties keep schema order),
// drops zero attributions and inactive one-hot indicators before truncating
// to topN, and narrates the remainder. The trailer always states the model's
// prediction itself, never the partial sum of the narrated lines.
func (c *ExplanationComposer) Compose(
	fv domain.FeatureVector,
	attr domain.Attribution,
	prediction float64,
	topN int,
) (domain.Explanation, error) {
	if len(fv.Values) != len(fv.Columns) {
		return domain.Explanation{}, &domain.ConsistencyError{
			Reason: fmt.Sprintf("feature vector has %d values for %d columns", len(fv.Values), len(fv.Columns)),
		}
	}
	if len(attr.Values) != len(fv.Columns) {
		return domain.Explanation{}, &domain.ConsistencyError{
			Reason: fmt.Sprintf("attribution has %d values for %d feature columns", len(attr.Values), len(fv.Columns)),
		}
	}

	if topN <= 0 {
		topN = c.topN
	}

	sum := attr.Base
	for _, v := range attr.Values {
		sum += v
	}
	if math.Abs(sum-prediction) > reconcileTolerance {
		return domain.Explanation{}, &domain.ConsistencyError{
			Reason: fmt.Sprintf(
				"base %.6f plus attributions sums to %.6f but prediction is %.6f",
				attr.Base, sum, prediction,
			),
		}
	}

	// stable sort keeps schema order on ties, so identical inputs always
	// narrate in identical order
	order := make([]int, len(fv.Columns))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(attr.Values[order[a]]) > math.Abs(attr.Values[order[b]])
	})

	lines := make([]string, 0, topN)
	for _, i := range order {
		if len(lines) == topN {
			break
		}
		contribution := attr.Values[i]
		if contribution == 0 {
			continue
		}
		// never narrate the absent side of a one-hot category
		if isIndicatorColumn(fv.Columns[i]) && fv.Values[i] == 0 {
			continue
		}

		direction := "raises"
		if contribution < 0 {
			direction = "lowers"
		}
		lines = append(lines, fmt.Sprintf(
			"- %s %s the unit price by about %.2f %s",
			describeColumn(fv.Columns[i], fv.Values[i]), direction, math.Abs(contribution), priceUnit,
		))
	}

	return domain.Explanation{
		BaseValue:      attr.Base,
		Predicted:      prediction,
		AttributionSum: sum,
		Header: fmt.Sprintf(
			"Starting from the market-wide average unit price of %.2f %s,", attr.Base, priceUnit,
		),
		Lines: lines,
		Trailer: fmt.Sprintf(
			"the estimated unit price for this property is %.2f %s.", prediction, priceUnit,
		),
	}, nil
}
