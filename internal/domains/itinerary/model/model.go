package model

const (
	EntityName = "itinerary"

	FieldID        = "id"
	FieldPlacement = "placement"

	PlacementHome       = "home"
	PlacementCalculator = "calculator"
)

type Itinerary struct {
	ID            string `json:"id"            field:"id"`
	ImageURL      string `json:"imageUrl"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	EstimatedCost int    `json:"estimatedCost"`
	Type          string `json:"type"`
	Placement     string `json:"placement"     field:"placement"`
	DetailID      string `json:"detailId"`
}
