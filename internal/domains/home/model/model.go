package model

import destinationModel "indivoyage/internal/domains/destination/model"

const EntityName = "home"

type Slide struct {
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Action struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type Intro struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Actions []Action `json:"actions"`
}

type Highlight struct {
	ImageURL      string `json:"imageUrl"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DiscountBadge string `json:"discountBadge"`
	CTAText       string `json:"ctaText"`
	CTALink       string `json:"ctaLink"`
}

// Content is everything on the landing page except the itineraries.
type Content struct {
	Slides              []Slide                        `json:"slides"`
	SlideCTA            Action                         `json:"slideCta"`
	Intro               Intro                          `json:"intro"`
	PopularDestinations []destinationModel.Destination `json:"popularDestinations"`
	HighlightedOffer    Highlight                      `json:"highlightedOffer"`
}
