package dto

import (
	"indivoyage/internal/domains/destination/model"
	"indivoyage/shared"
	gDto "indivoyage/shared/dto"
	"net/url"
	"strings"
)

const detailPath = "/destination-detail"

type DestinationResponse struct {
	ID        string   `json:"id"`
	ImageURL  string   `json:"image_url"`
	Name      string   `json:"name"`
	Tagline   string   `json:"tagline"`
	Region    string   `json:"region"`
	Interests []string `json:"interests"`
	Link      string   `json:"link"`
}

func (r *DestinationResponse) FromModel(m model.Destination) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.Name = m.Name
	r.Tagline = m.Tagline
	r.Region = m.Region
	r.Interests = m.Interests
	r.Link = detailPath

	if m.DetailID != "" {
		r.Link = detailPath + "?" + url.Values{"id": []string{m.DetailID}}.Encode()
	}
}

type Filters struct {
	Regions   []string `json:"regions"`
	Interests []string `json:"interests"`
}

type GetDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	Filters      Filters               `json:"filters"`
	Search       string                `json:"search"`
	Region       string                `json:"region"`
	Interest     string                `json:"interest"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetDestinationsResponse) FromModels(models []model.Destination, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.Page = params.Page
	r.PageSize = params.Limit
	r.Search = params.Search
	r.Region = params.Region
	r.Interest = params.Interest
	r.Filters = Filters{Regions: model.Regions, Interests: model.Interests}

	r.Destinations = make([]DestinationResponse, len(models))
	for i, m := range models {
		r.Destinations[i].FromModel(m)
	}
}

// BuildFilter matches the search term against name and tagline and the region against its
// value. Interest takes a comma separated list and matches destinations tagged with any of them.
func BuildFilter(params gDto.QueryParams) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if strings.TrimSpace(params.Search) != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: params.Search},
				gDto.Filter{Field: model.FieldTagline, Operator: gDto.FilterOperatorLike, Value: params.Search},
			},
		})
	}

	if params.Region != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRegion,
			Operator: gDto.FilterOperatorEq,
			Value:    params.Region,
		})
	}

	if interests := splitList(params.Interest); len(interests) > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldInterests,
			Operator: gDto.FilterOperatorIn,
			Value:    interests,
		})
	}

	return filterGroup
}

func splitList(value string) []string {
	items := []string{}

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// ByDetailReference matches a detail record by its id, the listing id it belongs to, or an alias.
func ByDetailReference(ref string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: ref},
			gDto.Filter{Field: model.FieldListingID, Operator: gDto.FilterOperatorEq, Value: ref},
			gDto.Filter{Field: model.FieldAliases, Operator: gDto.FilterOperatorEq, Value: ref},
		},
	}
}

type DetailResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Tagline              string             `json:"tagline"`
	Images               []model.Image      `json:"images"`
	CulturalSignificance string             `json:"cultural_significance"`
	KeyAttractions       []model.Attraction `json:"key_attractions"`
	BestTimeToVisit      string             `json:"best_time_to_visit"`
	LocalTips            []string           `json:"local_tips"`
	UserReviews          []model.Review     `json:"user_reviews"`
	AverageRating        float64            `json:"average_rating"`
	FAQs                 []model.FAQ        `json:"faqs"`
	BookingLink          string             `json:"booking_link"`
	CalculatorLink       string             `json:"calculator_link"`
}

func (r *DetailResponse) FromModel(m model.Detail) {
	r.ID = m.ID
	r.Name = m.Name
	r.Tagline = m.Tagline
	r.Images = m.Images
	r.CulturalSignificance = m.CulturalSignificance
	r.KeyAttractions = m.KeyAttractions
	r.BestTimeToVisit = m.BestTimeToVisit
	r.LocalTips = m.LocalTips
	r.UserReviews = m.UserReviews
	r.FAQs = m.FAQs
	r.BookingLink = "/booking?" + url.Values{"destination": []string{m.Name}}.Encode()
	r.CalculatorLink = "/trip-calculator"

	if len(m.UserReviews) > 0 {
		sum := 0
		for _, review := range m.UserReviews {
			sum += review.Rating
		}

		r.AverageRating = float64(sum) / float64(len(m.UserReviews))
	}
}
