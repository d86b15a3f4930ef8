package model

import gDto "indivoyage/shared/dto"

const (
	EntityName = "offer"

	FieldID          = "id"
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldSearchTags  = "search_tags"

	CategoryAll = "all"
)

// Categories lists the offer filter values in display order.
var Categories = []gDto.Option{
	{Value: CategoryAll, Label: "All Categories"},
	{Value: "cultural", Label: "Cultural & Heritage"},
	{Value: "nature", Label: "Nature & Wildlife"},
	{Value: "beaches", Label: "Beach Holidays"},
	{Value: "adventure", Label: "Adventure & Trekking"},
}

type Offer struct {
	ID            string   `json:"id"            field:"id"`
	Slug          string   `json:"slug"          field:"slug"`
	ImageURL      string   `json:"imageUrl"`
	Title         string   `json:"title"         field:"title"`
	Description   string   `json:"description"   field:"description"`
	DiscountBadge string   `json:"discountBadge"`
	CTAText       string   `json:"ctaText"`
	CTALink       string   `json:"ctaLink"`
	Category      string   `json:"category"      field:"category"`
	SearchTags    []string `json:"searchTags"    field:"search_tags"`
	Validity      string   `json:"validity"`
	Destination   string   `json:"destination"`
}
