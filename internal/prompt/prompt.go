// Package prompt builds the audit instruction sent to the generative
// provider. Building is pure and deterministic so the same submission
// always produces the same prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/localseolabs/seo-audit-agent/internal/models"
)

// NotProvided fills optional slots so the model always sees a complete
// fact list instead of guessing at omitted fields.
const NotProvided = "Not provided"

const schemaDescription = `Respond with a JSON object using EXACTLY this structure:
{
  "overallScore": <number between 0 and 100, e.g. 72>,
  "scoreExplanation": "<2-3 sentences explaining the score>",
  "googleBusinessRecommendations": [
    {"title": "<short recommendation name>", "action": "<concrete step the owner should take>"}
  ],
  "websiteRecommendations": [
    {"title": "<short recommendation name>", "action": "<concrete step the owner should take>"}
  ],
  "quickWins": [
    {"title": "<short recommendation name>", "action": "<something doable within a week>"}
  ]
}`

// Build renders the full instruction string for one business profile.
func Build(p models.BusinessProfile) string {
	var b strings.Builder

	b.WriteString("You are an expert local SEO consultant who audits small businesses. ")
	b.WriteString("Based ONLY on the facts below, produce a local SEO audit report.\n\n")

	b.WriteString("Business facts:\n")
	fact(&b, "Business name", p.BusinessName)
	fact(&b, "Business type", p.BusinessType)
	fact(&b, "Location", p.Location)
	fact(&b, "Primary service", p.PrimaryService)
	fact(&b, "Website URL", p.WebsiteURL)
	fact(&b, "Google Business Profile URL", p.GMBUrl)
	fact(&b, "Ideal customer", p.IdealCustomer)
	fact(&b, "Main goal", p.MainGoal)
	fact(&b, "Street address", p.StreetAddress)

	b.WriteString("\n")
	b.WriteString(schemaDescription)
	b.WriteString("\n\nOutput ONLY the JSON object. No surrounding prose, no markdown, no code fences.")

	return b.String()
}

func fact(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = NotProvided
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}
