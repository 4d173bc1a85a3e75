package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// priceUnit is the unit the model predicts in: ten-thousand NTD per ping,
// the convention of the Taiwanese transaction data it was trained on.
const priceUnit = "10k NTD/ping"

var indicatorPrefixes = []string{"district_", "building_type_", "main_use_"}

func isIndicatorColumn(col string) bool {
	for _, p := range indicatorPrefixes {
		if strings.HasPrefix(col, p) {
			return true
		}
	}
	return false
}

// describeColumn turns a schema column name plus its aligned value into a
// human phrase. Unknown columns fall back to their raw name; that is the one
// soft degradation in the pipeline.
func describeColumn(col string, value float64) string {
	switch {
	case strings.HasPrefix(col, "district_"):
		return fmt.Sprintf("being located in %s", strings.TrimPrefix(col, "district_"))
	case strings.HasPrefix(col, "building_type_"):
		return fmt.Sprintf("being a %s building", strings.TrimPrefix(col, "building_type_"))
	case strings.HasPrefix(col, "main_use_"):
		return fmt.Sprintf("being registered as %s", strings.TrimPrefix(col, "main_use_"))
	}

	switch col {
	case "building_age":
		return fmt.Sprintf("a building age of %s years", trimFloat(value))
	case "building_area_sqm":
		return fmt.Sprintf("a transferred building area of %s sqm", trimFloat(value))
	case "main_area":
		return fmt.Sprintf("a main area of %s ping", trimFloat(value))
	case "balcony_area":
		return fmt.Sprintf("a balcony area of %s ping", trimFloat(value))
	case "floor":
		return fmt.Sprintf("being on floor %s", trimFloat(value))
	case "total_floors":
		return fmt.Sprintf("a building height of %s floors", trimFloat(value))
	case "has_parking":
		if value != 0 {
			return "having a parking space"
		}
		return "having no parking space"
	case "has_elevator":
		if value != 0 {
			return "having an elevator"
		}
		return "having no elevator"
	}

	return fmt.Sprintf("%s = %s", col, trimFloat(value))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
