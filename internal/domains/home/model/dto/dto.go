package dto

import (
	destinationDto "indivoyage/internal/domains/destination/model/dto"
	"indivoyage/internal/domains/home/model"
	itineraryDto "indivoyage/internal/domains/itinerary/model/dto"
)

type HomeResponse struct {
	Slides              []model.Slide                        `json:"slides"`
	SlideCTA            model.Action                         `json:"slide_cta"`
	Intro               model.Intro                          `json:"intro"`
	PopularDestinations []destinationDto.DestinationResponse `json:"popular_destinations"`
	HighlightedOffer    model.Highlight                      `json:"highlighted_offer"`
	Itineraries         []itineraryDto.ItineraryResponse     `json:"itineraries"`
}

func (r *HomeResponse) FromModel(m model.Content, itineraries []itineraryDto.ItineraryResponse) {
	r.Slides = m.Slides
	r.SlideCTA = m.SlideCTA
	r.Intro = m.Intro
	r.HighlightedOffer = m.HighlightedOffer
	r.Itineraries = itineraries

	r.PopularDestinations = make([]destinationDto.DestinationResponse, len(m.PopularDestinations))
	for i, destination := range m.PopularDestinations {
		r.PopularDestinations[i].FromModel(destination)
	}
}
