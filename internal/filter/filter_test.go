package filter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/goblinball/goblinball/internal/filter"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var expr map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &expr))
	return expr
}

func TestTranslateRewritesWhitelistedOperators(t *testing.T) {
	expr := decode(t, `{"name": {"_eq": "Orcs"}, "_or": [{"maxPlayers": {"_gte": 8}}, {"public": {"_eq": true}}]}`)

	got := filter.Translate(expr)

	want := bson.M{
		"name": bson.M{"$eq": "Orcs"},
		"$or": []any{
			bson.M{"maxPlayers": bson.M{"$gte": float64(8)}},
			bson.M{"public": bson.M{"$eq": true}},
		},
	}
	require.Equal(t, want, got)
}

func TestTranslatePreservesKeyRemainder(t *testing.T) {
	cases := map[string]string{
		"_gte":        "$gte",
		"_elemMatch":  "$elemMatch",
		"_jsonSchema": "$jsonSchema",
		"_nin":        "$nin",
	}
	for in, out := range cases {
		got := filter.Translate(map[string]any{in: 1})
		require.Contains(t, got, out, "key %s", in)
		require.NotContains(t, got, in)
	}
}

func TestTranslateLeavesUnknownMarkerKeysAlone(t *testing.T) {
	// Operator-shaped keys outside the whitelist stay literal field names.
	expr := map[string]any{
		"_secretField": "x",
		"_dropTables":  map[string]any{"_eq": 1},
	}

	got := filter.Translate(expr)

	require.Equal(t, "x", got["_secretField"])
	require.Equal(t, bson.M{"$eq": 1}, got["_dropTables"])
}

func TestTranslateFieldNamesPassThrough(t *testing.T) {
	expr := map[string]any{"race": map[string]any{"_ne": "GOBLIN"}}
	got := filter.Translate(expr)
	require.Equal(t, bson.M{"race": bson.M{"$ne": "GOBLIN"}}, got)
}

func TestTranslateKeepsScalarArrayElements(t *testing.T) {
	expr := decode(t, `{"cost": {"_in": [1000, 2000, 3000]}}`)

	got := filter.Translate(expr)

	require.Equal(t, bson.M{
		"cost": bson.M{"$in": []any{float64(1000), float64(2000), float64(3000)}},
	}, got)
}

func TestTranslateIdempotentOnTranslatedKeys(t *testing.T) {
	expr := decode(t, `{"name": {"_eq": "Orcs"}, "_or": [{"gold": {"_lt": 100}}]}`)

	once := filter.Translate(expr)
	twice := filter.Translate(map[string]any(once))

	require.Equal(t, once, twice)
}

func TestDocumentRejectsUnrepresentableInput(t *testing.T) {
	_, err := filter.Document(map[string]any{"fn": func() {}})
	require.ErrorIs(t, err, filter.ErrMalformedFilter)
}

func TestDocumentRoundTrips(t *testing.T) {
	doc, err := filter.Document(decode(t, `{"league": "abc", "health": {"_gt": 0}}`))
	require.NoError(t, err)

	m := doc.Map()
	require.Equal(t, "abc", m["league"])
	require.Contains(t, m, "health")
}

func TestSortDocumentNoRewrite(t *testing.T) {
	doc, err := filter.SortDocument(map[string]any{"cost": -1})
	require.NoError(t, err)
	require.Equal(t, "cost", doc[0].Key)
}
