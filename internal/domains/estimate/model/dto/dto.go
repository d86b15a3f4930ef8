package dto

import (
	"indivoyage/internal/domains/estimate/model"
	itineraryDto "indivoyage/internal/domains/itinerary/model/dto"
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	"indivoyage/shared/money"
	"net/http"
	"strconv"
	"strings"
)

type EstimateRequest struct {
	Days          int    `json:"days"`
	Meal          string `json:"meal"`
	Transport     string `json:"transport"`
	Accommodation string `json:"accommodation"`
}

// FromRequest reads the trip configuration from the query string. Missing values stay unset.
func (e *EstimateRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	if days := strings.TrimSpace(query.Get(constant.RequestParamDays)); days != constant.Empty {
		value, err := strconv.Atoi(days)
		if err != nil {
			return failure.InvalidDaysParam
		}

		e.Days = value
	}

	e.Meal = strings.TrimSpace(query.Get(constant.RequestParamMeal))
	e.Transport = strings.TrimSpace(query.Get(constant.RequestParamTransport))
	e.Accommodation = strings.TrimSpace(query.Get(constant.RequestParamAccommodation))

	return nil
}

func (e EstimateRequest) ToModel() model.TripConfig {
	return model.TripConfig{
		Days:          e.Days,
		Meal:          e.Meal,
		Transport:     e.Transport,
		Accommodation: e.Accommodation,
	}
}

func FromTripConfig(c model.TripConfig) EstimateRequest {
	return EstimateRequest{
		Days:          c.Days,
		Meal:          c.Meal,
		Transport:     c.Transport,
		Accommodation: c.Accommodation,
	}
}

type Breakdown struct {
	Base          int `json:"base"`
	Meal          int `json:"meal"`
	Transport     int `json:"transport"`
	Accommodation int `json:"accommodation"`
	Daily         int `json:"daily"`
}

type EstimateResponse struct {
	Days           int        `json:"days"`
	Meal           model.Tier `json:"meal"`
	Transport      model.Tier `json:"transport"`
	Accommodation  model.Tier `json:"accommodation"`
	Breakdown      Breakdown  `json:"breakdown"`
	Total          int        `json:"total"`
	TotalFormatted string     `json:"total_formatted"`
}

func (r *EstimateResponse) FromModel(c model.TripConfig, formatter *money.Formatter) {
	r.Days = c.ClampedDays()
	r.Meal, _ = model.FindTier(model.MealTiers, c.Meal)
	r.Transport, _ = model.FindTier(model.TransportTiers, c.Transport)
	r.Accommodation, _ = model.FindTier(model.AccommodationTiers, c.Accommodation)

	r.Breakdown = Breakdown{
		Base:          model.BaseDailyCost,
		Meal:          r.Meal.Cost,
		Transport:     r.Transport.Cost,
		Accommodation: r.Accommodation.Cost,
		Daily:         c.DailyCost(),
	}

	r.Total = c.Estimate()
	r.TotalFormatted = formatter.Format(r.Total)
}

type Options struct {
	Meal          []model.Tier `json:"meal"`
	Transport     []model.Tier `json:"transport"`
	Accommodation []model.Tier `json:"accommodation"`
}

type DayRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type CalculatorResponse struct {
	Options     Options                          `json:"options"`
	Days        DayRange                         `json:"days"`
	Defaults    EstimateRequest                  `json:"defaults"`
	Estimate    EstimateResponse                 `json:"estimate"`
	Itineraries []itineraryDto.ItineraryResponse `json:"itineraries"`
}
