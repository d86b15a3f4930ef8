package dto

import (
	"fmt"
	"indivoyage/internal/domains/booking/model"
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/validator"
	"strings"
	"time"
)

const (
	fieldStartDate = "start_date"
	fieldEndDate   = "end_date"
)

type StartRequest struct {
	OfferID     string `json:"offer_id"    validate:"omitempty,max=100"`
	Destination string `json:"destination" validate:"omitempty,max=100"`
}

type PersonalRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required,phone"`
}

func (p *PersonalRequest) Validate() error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)

	return validator.ValidateStruct(p)
}

func (p PersonalRequest) ToModel() model.Personal {
	return model.Personal{
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
	}
}

type TripRequest struct {
	Destination       string `json:"destination"        validate:"required,min=3"`
	StartDate         string `json:"start_date"         validate:"required,date"`
	EndDate           string `json:"end_date"           validate:"required,date"`
	Travelers         int    `json:"travelers"          validate:"gte=1,lte=10"`
	AccommodationType string `json:"accommodation_type" validate:"required,oneof=budget_hotel mid_range_hotel luxury_hotel homestay resort"`
	TransportType     string `json:"transport_type"     validate:"required,oneof=flights train private_car"`
	SpecialRequests   string `json:"special_requests"   validate:"max=500"`
}

// Validate checks every field and additionally requires the end date to fall strictly after
// the start date.
func (t *TripRequest) Validate() error {
	t.Destination = strings.TrimSpace(t.Destination)

	err := validator.ValidateStruct(t)

	fields := failure.GetFields(err)
	if _, ok := fields[fieldStartDate]; ok {
		return err
	}

	if _, ok := fields[fieldEndDate]; ok {
		return err
	}

	start, end, parseErr := t.dates()
	if parseErr != nil {
		return validator.Merge(err, map[string]string{fieldEndDate: parseErr.Error()})
	}

	if !end.After(start) {
		return validator.Merge(err, map[string]string{
			fieldEndDate: fieldEndDate + " must be after " + fieldStartDate,
		})
	}

	return err
}

func (t TripRequest) dates() (time.Time, time.Time, error) {
	start, err := validator.ParseDate(t.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid %s: %w", fieldStartDate, err)
	}

	end, err := validator.ParseDate(t.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid %s: %w", fieldEndDate, err)
	}

	return start, end, nil
}

// ToModel expects a request that already passed Validate.
func (t TripRequest) ToModel() model.Trip {
	start, end, _ := t.dates()

	return model.Trip{
		Destination:       t.Destination,
		StartDate:         start,
		EndDate:           end,
		Travelers:         t.Travelers,
		AccommodationType: t.AccommodationType,
		TransportType:     t.TransportType,
		SpecialRequests:   t.SpecialRequests,
	}
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit_card debit_card upi net_banking"`
	AgreeToTerms  bool   `json:"agree_to_terms" validate:"accepted"`
}

func (p *PaymentRequest) Validate() error {
	return validator.ValidateStruct(p)
}

func (p PaymentRequest) ToModel() model.Payment {
	return model.Payment{
		Method:       p.PaymentMethod,
		AgreeToTerms: p.AgreeToTerms,
	}
}

type StepResponse struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}

func StepsResponse() []StepResponse {
	res := make([]StepResponse, len(model.Steps))
	for i, step := range model.Steps {
		res[i] = StepResponse{Number: int(step), Label: step.Label()}
	}

	return res
}

type Options struct {
	Accommodation []gDto.Option `json:"accommodation"`
	Transport     []gDto.Option `json:"transport"`
	Payment       []gDto.Option `json:"payment"`
}

type Prefill struct {
	Destination string `json:"destination"`
	Travelers   int    `json:"travelers"`
	OfferID     string `json:"offer_id,omitempty"`
	OfferTitle  string `json:"offer_title,omitempty"`
}

type FormResponse struct {
	Steps              []StepResponse `json:"steps"`
	Options            Options        `json:"options"`
	Prefill            Prefill        `json:"prefill"`
	MaxTravelers       int            `json:"max_travelers"`
	MaxSpecialRequests int            `json:"max_special_requests"`
}

func (r *FormResponse) Build(prefill Prefill) {
	r.Steps = StepsResponse()
	r.Options = Options{
		Accommodation: model.AccommodationOptions,
		Transport:     model.TransportOptions,
		Payment:       model.PaymentOptions,
	}
	r.Prefill = prefill
	r.MaxTravelers = model.MaxTravelers
	r.MaxSpecialRequests = model.MaxSpecialRequests
}

type PersonalResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type TripResponse struct {
	Destination        string `json:"destination"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Travelers          int    `json:"travelers"`
	AccommodationType  string `json:"accommodation_type"`
	AccommodationLabel string `json:"accommodation_label"`
	TransportType      string `json:"transport_type"`
	TransportLabel     string `json:"transport_label"`
	SpecialRequests    string `json:"special_requests"`
}

type PaymentResponse struct {
	PaymentMethod string `json:"payment_method"`
	PaymentLabel  string `json:"payment_label"`
	AgreeToTerms  bool   `json:"agree_to_terms"`
}

type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type SessionResponse struct {
	ID          string           `json:"id"`
	Step        int              `json:"step"`
	StepLabel   string           `json:"step_label"`
	TotalSteps  int              `json:"total_steps"`
	Progress    int              `json:"progress"`
	Status      string           `json:"status"`
	CanGoBack   bool             `json:"can_go_back"`
	OfferID     string           `json:"offer_id,omitempty"`
	Personal    PersonalResponse `json:"personal"`
	Trip        TripResponse     `json:"trip"`
	Payment     PaymentResponse  `json:"payment"`
	Reference   string           `json:"reference,omitempty"`
	ConfirmedAt string           `json:"confirmed_at,omitempty"`
	Message     string           `json:"message,omitempty"`
	Links       []Link           `json:"links,omitempty"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return t.Format(constant.DateOnlyFormat)
}

func (r *SessionResponse) FromModel(m model.Session) {
	r.ID = m.ID
	r.Step = int(m.Step)
	r.StepLabel = m.Step.Label()
	r.TotalSteps = model.TotalSteps
	r.Progress = int(m.Step) * 100 / model.TotalSteps
	r.Status = m.Status
	r.CanGoBack = m.Step.CanGoBack() && m.Status == model.StatusInProgress
	r.OfferID = m.OfferID

	r.Personal = PersonalResponse{
		FullName: m.Personal.FullName,
		Email:    m.Personal.Email,
		Phone:    m.Personal.Phone,
	}

	r.Trip = TripResponse{
		Destination:        m.Trip.Destination,
		StartDate:          formatDate(m.Trip.StartDate),
		EndDate:            formatDate(m.Trip.EndDate),
		Travelers:          m.Trip.Travelers,
		AccommodationType:  m.Trip.AccommodationType,
		AccommodationLabel: model.OptionLabel(model.AccommodationOptions, m.Trip.AccommodationType),
		TransportType:      m.Trip.TransportType,
		TransportLabel:     model.OptionLabel(model.TransportOptions, m.Trip.TransportType),
		SpecialRequests:    m.Trip.SpecialRequests,
	}

	r.Payment = PaymentResponse{
		PaymentMethod: m.Payment.Method,
		PaymentLabel:  model.OptionLabel(model.PaymentOptions, m.Payment.Method),
		AgreeToTerms:  m.Payment.AgreeToTerms,
	}

	switch m.Status {
	case model.StatusConfirming:
		r.Message = "Your booking is being processed. Please wait."
	case model.StatusConfirmed:
		r.Reference = m.Reference
		r.ConfirmedAt = m.ConfirmedAt.Format(constant.DateFormat)
		r.Message = "Thank you for choosing IndiVoyage."
		r.Links = []Link{
			{Text: "View My Trips", Href: "/user-profile"},
			{Text: "Explore More", Href: "/"},
			{Text: "Download Receipt", Href: "/booking/sessions/" + m.ID + "/receipt"},
		}
	}
}

type Receipt struct {
	Filename string
	Content  []byte
}
