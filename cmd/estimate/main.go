package main

import (
	"fmt"
	"indivoyage/config"
	"indivoyage/internal/domains/estimate/model"
	"indivoyage/shared/money"
	"log"
	"os"
	"strconv"
)

const (
	argDays = iota + 1
	argMeal
	argTransport
	argAccommodation
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "tiers" {
		printTiers()

		return
	}

	trip := model.DefaultTripConfig()

	if len(os.Args) > argDays {
		days, err := strconv.Atoi(os.Args[argDays])
		if err != nil {
			log.Fatalf("Invalid days %q. Usage: estimate [days] [meal] [transport] [accommodation] | estimate tiers", os.Args[argDays])
		}

		trip.Days = days
	}

	if len(os.Args) > argMeal {
		trip.Meal = os.Args[argMeal]
	}

	if len(os.Args) > argTransport {
		trip.Transport = os.Args[argTransport]
	}

	if len(os.Args) > argAccommodation {
		trip.Accommodation = os.Args[argAccommodation]
	}

	formatter := money.NewFromConfig(config.Get())

	fmt.Printf("%d days, %s, %s, %s\n", trip.ClampedDays(), trip.Meal, trip.Transport, trip.Accommodation)
	fmt.Printf("Per day:  %s\n", formatter.Format(trip.DailyCost()))
	fmt.Printf("Estimate: %s\n", formatter.Format(trip.Estimate()))
}

func printTiers() {
	groups := []struct {
		name  string
		tiers []model.Tier
	}{
		{name: "meal", tiers: model.MealTiers},
		{name: "transport", tiers: model.TransportTiers},
		{name: "accommodation", tiers: model.AccommodationTiers},
	}

	for _, group := range groups {
		fmt.Println(group.name)

		for _, tier := range group.tiers {
			fmt.Printf("  %-16s %-32s %6d\n", tier.Value, tier.Label, tier.Cost)
		}
	}
}
