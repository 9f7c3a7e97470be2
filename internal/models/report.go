package models

// Recommendation is a single actionable audit item.
type Recommendation struct {
	Title  string `json:"title"`
	Action string `json:"action"`
}

// AuditReport is the canonical report contract returned to the client.
// Every field is required; the schema validator rejects anything less.
type AuditReport struct {
	OverallScore                  float64          `json:"overallScore"`
	ScoreExplanation              string           `json:"scoreExplanation"`
	GoogleBusinessRecommendations []Recommendation `json:"googleBusinessRecommendations"`
	WebsiteRecommendations        []Recommendation `json:"websiteRecommendations"`
	QuickWins                     []Recommendation `json:"quickWins"`
}

// ErrorResponse is the body of every non-200 API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
