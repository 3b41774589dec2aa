// Package filter translates client-supplied filter expressions into bson
// documents for the document store. Clients tag query operators with a
// leading underscore (`_gte`, `_or`); the translator rewrites the marker to
// the store's `$` prefix for whitelisted operator names only, so an
// attacker-controlled key can never gain operator semantics by accident.
package filter

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrMalformedFilter indicates a filter that cannot be represented as a
// store query document.
var ErrMalformedFilter = errors.New("malformed filter")

// operators is the closed whitelist of rewritable keys. A `_`-prefixed key
// outside this set is treated as a literal field name and left untouched.
var operators = map[string]struct{}{
	// Comparison
	"_eq":  {},
	"_gt":  {},
	"_gte": {},
	"_in":  {},
	"_lt":  {},
	"_lte": {},
	"_ne":  {},
	"_nin": {},

	// Logical
	"_and": {},
	"_not": {},
	"_nor": {},
	"_or":  {},

	// Element
	"_exists": {},
	"_type":   {},

	// Evaluation
	"_expr":       {},
	"_jsonSchema": {},
	"_mod":        {},
	"_regex":      {},
	"_text":       {},
	"_where":      {},

	// Geospatial
	"_geoIntersects": {},
	"_geoWithin":     {},
	"_near":          {},
	"_nearSphere":    {},
	"_box":           {},
	"_center":        {},
	"_centerSphere":  {},
	"_geometry":      {},
	"_maxDistance":   {},
	"_minDistance":   {},
	"_polygon":       {},
	"_uniqueDocs":    {},

	// Array
	"_all":       {},
	"_elemMatch": {},
	"_size":      {},

	// Bitwise
	"_bitsAllClear": {},
	"_bitsAllSet":   {},
	"_bitsAnyClear": {},
	"_bitsAnySet":   {},

	// Projection
	"_projection": {},
	"_slice":      {},

	// Miscellaneous
	"_comment": {},
	"_rand":    {},
}

// Translate rewrites operator markers throughout a filter expression. It is
// pure, never fails, and preserves the nesting structure of its input:
// mappings recurse, arrays recurse into mapping elements, and every other
// value passes through unchanged.
func Translate(expr map[string]any) bson.M {
	out := make(bson.M, len(expr))
	for key, value := range expr {
		if _, ok := operators[key]; ok {
			key = "$" + key[1:]
		}
		out[key] = translateValue(value)
	}
	return out
}

func translateValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Translate(v)
	case bson.M:
		return Translate(map[string]any(v))
	case []any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, translateValue(item))
		}
		return items
	default:
		return value
	}
}

// Document translates a filter expression and verifies the result can be
// represented as a store query document. The returned error wraps
// ErrMalformedFilter so callers can surface it as a bad request rather
// than an internal failure.
func Document(expr map[string]any) (bson.D, error) {
	return toDocument(Translate(expr))
}

// SortDocument converts a client sort object without operator rewriting;
// sort keys are field names by definition.
func SortDocument(expr map[string]any) (bson.D, error) {
	return toDocument(bson.M(expr))
}

func toDocument(m bson.M) (bson.D, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
	}
	return doc, nil
}
