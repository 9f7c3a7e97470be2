package report

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReport() map[string]any {
	var obj map[string]any
	err := json.Unmarshal([]byte(`{
		"overallScore": 72,
		"scoreExplanation": "Strong service pages but a thin Google Business Profile.",
		"googleBusinessRecommendations": [
			{"title": "Add photos", "action": "Upload ten recent photos of the shop."}
		],
		"websiteRecommendations": [
			{"title": "Local keywords", "action": "Mention Philadelphia on the homepage."}
		],
		"quickWins": [
			{"title": "Hours", "action": "Confirm opening hours are current."}
		]
	}`), &obj)
	if err != nil {
		panic(err)
	}
	return obj
}

func TestValidate(t *testing.T) {
	t.Run("accepts a complete report", func(t *testing.T) {
		parsed, err := Validate(validReport())
		require.NoError(t, err)

		assert.Equal(t, 72.0, parsed.OverallScore)
		assert.Equal(t, "Strong service pages but a thin Google Business Profile.", parsed.ScoreExplanation)
		require.Len(t, parsed.GoogleBusinessRecommendations, 1)
		assert.Equal(t, "Add photos", parsed.GoogleBusinessRecommendations[0].Title)
		require.Len(t, parsed.WebsiteRecommendations, 1)
		require.Len(t, parsed.QuickWins, 1)
	})

	t.Run("ignores unexpected extra fields", func(t *testing.T) {
		obj := validReport()
		obj["brandVoice"] = "friendly"
		obj["competitors"] = []any{"Joe's Cuts"}

		parsed, err := Validate(obj)
		require.NoError(t, err)
		assert.Equal(t, 72.0, parsed.OverallScore)
	})

	t.Run("rejects each missing top-level field by name", func(t *testing.T) {
		for _, field := range []string{
			"overallScore",
			"scoreExplanation",
			"googleBusinessRecommendations",
			"websiteRecommendations",
			"quickWins",
		} {
			t.Run(field, func(t *testing.T) {
				obj := validReport()
				delete(obj, field)

				_, err := Validate(obj)
				var schemaErr *SchemaError
				require.True(t, errors.As(err, &schemaErr))
				assert.Equal(t, field, schemaErr.Field)
			})
		}
	})

	t.Run("rejects non-numeric score", func(t *testing.T) {
		obj := validReport()
		obj["overallScore"] = "seventy-two"

		_, err := Validate(obj)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "overallScore", schemaErr.Field)
	})

	t.Run("rejects out-of-range score", func(t *testing.T) {
		for _, score := range []float64{-5, -0.5, 100.5, 150} {
			obj := validReport()
			obj["overallScore"] = score

			_, err := Validate(obj)
			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "score %v", score)
			assert.Equal(t, "overallScore", schemaErr.Field)
		}
	})

	t.Run("accepts boundary scores", func(t *testing.T) {
		for _, score := range []float64{0, 100} {
			obj := validReport()
			obj["overallScore"] = score

			parsed, err := Validate(obj)
			require.NoError(t, err, "score %v", score)
			assert.Equal(t, score, parsed.OverallScore)
		}
	})

	t.Run("rejects non-list recommendation section", func(t *testing.T) {
		obj := validReport()
		obj["websiteRecommendations"] = "fix the title tags"

		_, err := Validate(obj)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "websiteRecommendations", schemaErr.Field)
	})

	t.Run("rejects empty required section", func(t *testing.T) {
		obj := validReport()
		obj["googleBusinessRecommendations"] = []any{}

		_, err := Validate(obj)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "googleBusinessRecommendations", schemaErr.Field)
	})

	t.Run("allows empty quickWins", func(t *testing.T) {
		obj := validReport()
		obj["quickWins"] = []any{}

		parsed, err := Validate(obj)
		require.NoError(t, err)
		assert.Empty(t, parsed.QuickWins)
	})

	t.Run("rejects item missing action", func(t *testing.T) {
		obj := validReport()
		obj["quickWins"] = []any{map[string]any{"title": "Hours"}}

		_, err := Validate(obj)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "quickWins[0].action", schemaErr.Field)
	})

	t.Run("rejects item with empty title", func(t *testing.T) {
		obj := validReport()
		obj["websiteRecommendations"] = []any{map[string]any{"title": "", "action": "Do the thing."}}

		_, err := Validate(obj)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "websiteRecommendations[0].title", schemaErr.Field)
	})

	t.Run("rejects non-object item", func(t *testing.T) {
		obj := validReport()
		obj["quickWins"] = []any{"just a string"}

		_, err := Validate(obj)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "quickWins[0]", schemaErr.Field)
	})
}
