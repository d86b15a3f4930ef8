package dto

import (
	"indivoyage/internal/domains/itinerary/model"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/money"
	"net/url"
)

type ItineraryResponse struct {
	ID                     string `json:"id"`
	ImageURL               string `json:"image_url"`
	Title                  string `json:"title"`
	Description            string `json:"description"`
	Duration               string `json:"duration"`
	EstimatedCost          int    `json:"estimated_cost"`
	EstimatedCostFormatted string `json:"estimated_cost_formatted"`
	Type                   string `json:"type,omitempty"`
	Link                   string `json:"link"`
}

func (r *ItineraryResponse) FromModel(m model.Itinerary, formatter *money.Formatter) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.Title = m.Title
	r.Description = m.Description
	r.Duration = m.Duration
	r.EstimatedCost = m.EstimatedCost
	r.EstimatedCostFormatted = formatter.Format(m.EstimatedCost)
	r.Type = m.Type
	r.Link = "/destination-detail?" + url.Values{"itineraryId": []string{m.ID}}.Encode()
}

func FromModels(models []model.Itinerary, formatter *money.Formatter) []ItineraryResponse {
	res := make([]ItineraryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m, formatter)
	}

	return res
}

func ByPlacement(placement string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldPlacement, Operator: gDto.FilterOperatorEq, Value: placement},
		},
	}
}

func ByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		},
	}
}
