package model

import (
	gDto "indivoyage/shared/dto"
	"time"
)

const (
	EntityName = "booking"

	TotalSteps         = 4
	MaxTravelers       = 10
	MaxSpecialRequests = 500

	StatusInProgress = "in_progress"
	StatusConfirming = "confirming"
	StatusConfirmed  = "confirmed"

	ReferencePrefix = "INDTRV"
)

type Step int

const (
	StepPersonal Step = iota + 1
	StepTrip
	StepReview
	StepConfirmed
)

var stepLabels = map[Step]string{
	StepPersonal:  "Personal Information",
	StepTrip:      "Trip Details",
	StepReview:    "Review & Payment",
	StepConfirmed: "Booking Confirmation",
}

var Steps = []Step{StepPersonal, StepTrip, StepReview, StepConfirmed}

func (s Step) Label() string {
	return stepLabels[s]
}

// CanGoBack reports whether the form may return to the previous step. The first step has
// nowhere to go and a confirmed booking is final.
func (s Step) CanGoBack() bool {
	return s == StepTrip || s == StepReview
}

var (
	AccommodationOptions = []gDto.Option{
		{Value: "budget_hotel", Label: "Budget Hotel"},
		{Value: "mid_range_hotel", Label: "Mid-Range Hotel (3-Star)"},
		{Value: "luxury_hotel", Label: "Luxury Hotel (4-5 Star)"},
		{Value: "homestay", Label: "Homestay / Guesthouse"},
		{Value: "resort", Label: "Resort"},
	}

	TransportOptions = []gDto.Option{
		{Value: "flights", Label: "Flights (if applicable)"},
		{Value: "train", Label: "Train"},
		{Value: "private_car", Label: "Private Car / Cab"},
	}

	PaymentOptions = []gDto.Option{
		{Value: "credit_card", Label: "Credit Card"},
		{Value: "debit_card", Label: "Debit Card"},
		{Value: "upi", Label: "UPI"},
		{Value: "net_banking", Label: "Net Banking"},
	}
)

// OptionLabel returns the display label of value, or value itself when it is not listed.
func OptionLabel(options []gDto.Option, value string) string {
	for _, option := range options {
		if option.Value == value {
			return option.Label
		}
	}

	return value
}

type Personal struct {
	FullName string
	Email    string
	Phone    string
}

type Trip struct {
	Destination       string
	StartDate         time.Time
	EndDate           time.Time
	Travelers         int
	AccommodationType string
	TransportType     string
	SpecialRequests   string
}

type Payment struct {
	Method       string
	AgreeToTerms bool
}

// Session is one visit to the booking form. It only lives in memory.
type Session struct {
	ID          string
	Step        Step
	Status      string
	OfferID     string
	Personal    Personal
	Trip        Trip
	Payment     Payment
	Reference   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt time.Time
	ExpiresAt   time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
