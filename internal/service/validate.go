package service

import (
	"github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
)

const msgMissingFields = "Missing required fields: name, description, price, category, inStock"

// ValidateProduct checks a candidate payload for required fields and type
// correctness. It is a pure predicate; the first failing check wins, and
// missing-field errors take precedence over type errors.
//
// Presence rules differ per field on purpose: name/description/category must
// be truthy (an empty string counts as absent), while price and inStock only
// need their key present, so price 0 and inStock false are valid.
func ValidateProduct(payload store.Product) error {
	_, pricePresent := payload["price"]
	_, inStockPresent := payload["inStock"]
	if !truthy(payload["name"]) ||
		!truthy(payload["description"]) ||
		!pricePresent ||
		!truthy(payload["category"]) ||
		!inStockPresent {
		return errors.NewValidation(msgMissingFields)
	}

	if price, ok := asNumber(payload["price"]); !ok || price < 0 {
		return errors.NewValidation("Price must be a positive number")
	}

	if _, ok := payload["inStock"].(bool); !ok {
		return errors.NewValidation("inStock must be a boolean")
	}

	return nil
}

// truthy reports whether a decoded JSON value is non-empty in the loose
// sense: nil, "", false and 0 all count as absent.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

// asNumber extracts a numeric value. encoding/json decodes into float64, but
// payloads assembled in code may carry Go integer types.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
