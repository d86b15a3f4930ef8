package model

const (
	BaseDailyCost = 500

	MinDays     = 1
	MaxDays     = 30
	DefaultDays = 7

	MealBreakfastOnly = "breakfast_only"
	MealHalfBoard     = "half_board"
	MealFullBoard     = "full_board"

	TransportEconomy = "economy"
	TransportComfort = "comfort"
	TransportLuxury  = "luxury"

	AccommodationBudget   = "budget"
	AccommodationMidRange = "mid_range"
	AccommodationLuxury   = "luxury"
)

// Tier is a pricing level. Meal and transport costs are per day, accommodation per night.
type Tier struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Cost  int    `json:"cost"`
}

var (
	MealTiers = []Tier{
		{Value: MealBreakfastOnly, Label: "Breakfast Only", Cost: 300},
		{Value: MealHalfBoard, Label: "Half Board (Breakfast & Dinner)", Cost: 700},
		{Value: MealFullBoard, Label: "Full Board (All Meals)", Cost: 1200},
	}

	TransportTiers = []Tier{
		{Value: TransportEconomy, Label: "Economy (Bus/Train)", Cost: 200},
		{Value: TransportComfort, Label: "Comfort (AC Train/Shared Cab)", Cost: 600},
		{Value: TransportLuxury, Label: "Luxury (Private Car/Flights)", Cost: 1500},
	}

	AccommodationTiers = []Tier{
		{Value: AccommodationBudget, Label: "Budget (Hostels/Guesthouses)", Cost: 800},
		{Value: AccommodationMidRange, Label: "Mid-Range (3-Star Hotels)", Cost: 2500},
		{Value: AccommodationLuxury, Label: "Luxury (4-5 Star Hotels)", Cost: 6000},
	}
)

func FindTier(tiers []Tier, value string) (Tier, bool) {
	for _, tier := range tiers {
		if tier.Value == value {
			return tier, true
		}
	}

	return Tier{}, false
}

type TripConfig struct {
	Days          int
	Meal          string
	Transport     string
	Accommodation string
}

func DefaultTripConfig() TripConfig {
	return TripConfig{
		Days:          DefaultDays,
		Meal:          MealBreakfastOnly,
		Transport:     TransportEconomy,
		Accommodation: AccommodationBudget,
	}
}

// ClampedDays caps the duration at MaxDays. Non-positive durations are kept as is.
func (c TripConfig) ClampedDays() int {
	if c.Days > MaxDays {
		return MaxDays
	}

	return c.Days
}

// DailyCost is the cost of one day and one night, or 0 when any tier is unknown.
func (c TripConfig) DailyCost() int {
	meal, ok := FindTier(MealTiers, c.Meal)
	if !ok {
		return 0
	}

	transport, ok := FindTier(TransportTiers, c.Transport)
	if !ok {
		return 0
	}

	accommodation, ok := FindTier(AccommodationTiers, c.Accommodation)
	if !ok {
		return 0
	}

	return BaseDailyCost + meal.Cost + transport.Cost + accommodation.Cost
}

// Estimate counts one night per day.
func (c TripConfig) Estimate() int {
	days := c.ClampedDays()
	if days <= 0 {
		return 0
	}

	return c.DailyCost() * days
}
