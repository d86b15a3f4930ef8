package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"indivoyage/internal/domains/estimate/model"
)

func TestTripConfig_Estimate(t *testing.T) {
	tests := []struct {
		name   string
		config model.TripConfig
		want   int
	}{
		{name: "defaults", config: model.DefaultTripConfig(), want: 12600},
		{
			name:   "top tiers for a single day",
			config: model.TripConfig{Days: 1, Meal: model.MealFullBoard, Transport: model.TransportLuxury, Accommodation: model.AccommodationLuxury},
			want:   9200,
		},
		{
			name:   "mixed tiers",
			config: model.TripConfig{Days: 10, Meal: model.MealHalfBoard, Transport: model.TransportComfort, Accommodation: model.AccommodationMidRange},
			want:   43000,
		},
		{
			name:   "days above the maximum are clamped",
			config: model.TripConfig{Days: 45, Meal: model.MealBreakfastOnly, Transport: model.TransportEconomy, Accommodation: model.AccommodationBudget},
			want:   54000,
		},
		{
			name:   "zero days",
			config: model.TripConfig{Days: 0, Meal: model.MealBreakfastOnly, Transport: model.TransportEconomy, Accommodation: model.AccommodationBudget},
		},
		{
			name:   "negative days",
			config: model.TripConfig{Days: -3, Meal: model.MealBreakfastOnly, Transport: model.TransportEconomy, Accommodation: model.AccommodationBudget},
		},
		{
			name:   "meal unset",
			config: model.TripConfig{Days: 7, Transport: model.TransportEconomy, Accommodation: model.AccommodationBudget},
		},
		{
			name:   "unknown transport",
			config: model.TripConfig{Days: 7, Meal: model.MealHalfBoard, Transport: "rocket", Accommodation: model.AccommodationBudget},
		},
		{
			name:   "accommodation unset",
			config: model.TripConfig{Days: 7, Meal: model.MealHalfBoard, Transport: model.TransportComfort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.Estimate())
		})
	}
}

func TestTripConfig_EstimateIsLinearAndIncreasing(t *testing.T) {
	for _, meal := range model.MealTiers {
		for _, transport := range model.TransportTiers {
			for _, accommodation := range model.AccommodationTiers {
				daily := model.BaseDailyCost + meal.Cost + transport.Cost + accommodation.Cost
				previous := 0

				for days := model.MinDays; days <= model.MaxDays; days++ {
					config := model.TripConfig{Days: days, Meal: meal.Value, Transport: transport.Value, Accommodation: accommodation.Value}
					got := config.Estimate()

					assert.Equal(t, daily*days, got)
					assert.Greater(t, got, previous)

					previous = got
				}
			}
		}
	}
}

func TestFindTier(t *testing.T) {
	tier, ok := model.FindTier(model.AccommodationTiers, model.AccommodationMidRange)
	assert.True(t, ok)
	assert.Equal(t, 2500, tier.Cost)

	_, ok = model.FindTier(model.MealTiers, "")
	assert.False(t, ok)
}
