package dto

import (
	"indivoyage/internal/domains/offer/model"
	"indivoyage/shared"
	gDto "indivoyage/shared/dto"
	"strings"
)

type OfferResponse struct {
	ID            string `json:"id"`
	ImageURL      string `json:"image_url"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DiscountBadge string `json:"discount_badge,omitempty"`
	CTAText       string `json:"cta_text"`
	CTALink       string `json:"cta_link"`
	Category      string `json:"category"`
	Validity      string `json:"validity"`
}

func (r *OfferResponse) FromModel(m model.Offer) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.Title = m.Title
	r.Description = m.Description
	r.DiscountBadge = m.DiscountBadge
	r.CTAText = m.CTAText
	r.CTALink = m.CTALink
	r.Category = m.Category
	r.Validity = m.Validity
}

type GetOffersResponse struct {
	Offers     []OfferResponse `json:"offers"`
	Categories []gDto.Option   `json:"categories"`
	Search     string          `json:"search"`
	Category   string          `json:"category"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPage  int             `json:"total_page"`
	TotalData  int             `json:"total_data"`
}

func (r *GetOffersResponse) FromModels(models []model.Offer, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.Page = params.Page
	r.PageSize = params.Limit
	r.Search = params.Search
	r.Category = params.Category
	r.Categories = model.Categories

	r.Offers = make([]OfferResponse, len(models))
	for i, m := range models {
		r.Offers[i].FromModel(m)
	}
}

// BuildFilter keeps offers in the requested category whose title, description or
// any search tag contains the search term. The "all" category does not filter.
func BuildFilter(params gDto.QueryParams) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if params.Category != "" && params.Category != model.CategoryAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorExact,
			Value:    params.Category,
		})
	}

	if strings.TrimSpace(params.Search) != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: params.Search},
				gDto.Filter{Field: model.FieldDescription, Operator: gDto.FilterOperatorLike, Value: params.Search},
				gDto.Filter{Field: model.FieldSearchTags, Operator: gDto.FilterOperatorLike, Value: params.Search},
			},
		})
	}

	return filterGroup
}

// ByReference matches an offer by id or by the slug used in booking links.
func ByReference(ref string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: ref},
			gDto.Filter{Field: model.FieldSlug, Operator: gDto.FilterOperatorEq, Value: ref},
		},
	}
}
