package chat

import "fmt"

// Default placeholders for extraction failures in the moving path.
const (
	defaultOrigin      = "current location"
	defaultDestination = "new city"
)

// enrichmentQuery is one category/location pair of the moving-plan fan-out.
type enrichmentQuery struct {
	Category string
	Heading  string
	Text     string
}

// movingPlanQueries builds the seven fixed enrichment queries for a move
// from origin to destination. The order matches the plan sections.
func movingPlanQueries(origin, destination string) []enrichmentQuery {
	return []enrichmentQuery{
		{
			Category: "movers",
			Heading:  fmt.Sprintf("Moving Companies in %s", origin),
			Text:     fmt.Sprintf("moving companies in %s", origin),
		},
		{
			Category: "housing",
			Heading:  fmt.Sprintf("Apartments and Housing in %s", destination),
			Text:     fmt.Sprintf("apartments in %s", destination),
		},
		{
			Category: "storage",
			Heading:  fmt.Sprintf("Storage Facilities in %s", origin),
			Text:     fmt.Sprintf("storage facilities in %s", origin),
		},
		{
			Category: "cleaning",
			Heading:  fmt.Sprintf("Cleaning Services in %s", destination),
			Text:     fmt.Sprintf("cleaning services in %s", destination),
		},
		{
			Category: "furniture",
			Heading:  fmt.Sprintf("Furniture Stores in %s", destination),
			Text:     fmt.Sprintf("furniture stores in %s", destination),
		},
		{
			Category: "restaurants",
			Heading:  fmt.Sprintf("Restaurants in %s", destination),
			Text:     fmt.Sprintf("best restaurants in %s", destination),
		},
		{
			Category: "activities",
			Heading:  fmt.Sprintf("Things to Do in %s", destination),
			Text:     fmt.Sprintf("things to do in %s", destination),
		},
	}
}
