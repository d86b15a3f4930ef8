package validator_test

import (
	"indivoyage/shared/failure"
	"indivoyage/shared/validator"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type travellerForm struct {
	Name      string `json:"fullName"  validate:"required,min=2"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required,phone"`
	Travelers int    `json:"travelers" validate:"gte=1,lte=10"`
	Payment   string `json:"payment"   validate:"oneof=upi credit_card"`
	StartDate string `json:"startDate" validate:"required,date"`
	Agree     bool   `json:"agree"     validate:"accepted"`
}

func validForm() travellerForm {
	return travellerForm{
		Name:      "Aarav Sharma",
		Email:     "aarav.sharma@example.com",
		Phone:     "+91 98765-43210",
		Travelers: 2,
		Payment:   "upi",
		StartDate: "2025-01-10",
		Agree:     true,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *travellerForm)
		wantField string
	}{
		{name: "valid form", mutate: func(*travellerForm) {}},
		{name: "short name", mutate: func(f *travellerForm) { f.Name = "A" }, wantField: "fullName"},
		{name: "invalid email", mutate: func(f *travellerForm) { f.Email = "aarav@" }, wantField: "email"},
		{name: "phone too short", mutate: func(f *travellerForm) { f.Phone = "12345" }, wantField: "phone"},
		{name: "phone with letters", mutate: func(f *travellerForm) { f.Phone = "98765abcde12" }, wantField: "phone"},
		{name: "too many travelers", mutate: func(f *travellerForm) { f.Travelers = 11 }, wantField: "travelers"},
		{name: "zero travelers", mutate: func(f *travellerForm) { f.Travelers = 0 }, wantField: "travelers"},
		{name: "unknown payment", mutate: func(f *travellerForm) { f.Payment = "cash" }, wantField: "payment"},
		{name: "unparseable date", mutate: func(f *travellerForm) { f.StartDate = "next friday" }, wantField: "startDate"},
		{name: "terms not accepted", mutate: func(f *travellerForm) { f.Agree = false }, wantField: "agree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err), tt.wantField)
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	form := travellerForm{}

	err := validator.ValidateStruct(&form)
	require.Error(t, err)

	fields := failure.GetFields(err)
	for _, name := range []string{"fullName", "email", "phone", "travelers", "payment", "startDate", "agree"} {
		assert.Contains(t, fields, name)
	}

	assert.Equal(t, "fullName is required", fields["fullName"])
}

func TestValidateStruct_ProfileTags(t *testing.T) {
	type contact struct {
		Phone   string `json:"phone"   validate:"omitempty,profilephone"`
		Started string `json:"started" validate:"omitempty,date"`
	}

	tests := []struct {
		name      string
		form      contact
		wantField string
	}{
		{name: "international phone", form: contact{Phone: "+919876543210"}},
		{name: "phone with spaces", form: contact{Phone: "+91 98765 43210"}, wantField: "phone"},
		{name: "rfc3339 date", form: contact{Started: "2025-01-10T09:00:00Z"}},
		{name: "blank fields are optional", form: contact{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.form)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, failure.GetFields(err), tt.wantField)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"fullName":"Aarav Sharma","email":"a@example.com","phone":"9876543210","travelers":1,"payment":"upi","startDate":"2025-01-10","agree":true}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"fullName":"Aarav Sharma","email":"nope","phone":"9876543210","travelers":1,"payment":"upi","startDate":"2025-01-10","agree":true}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"fullName":}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data travellerForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := validator.ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = validator.ParseDate("2025-03-01T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	_, err = validator.ParseDate("")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := failure.Validation("validation failed", map[string]string{"endDate": "endDate is required"})

	merged := validator.Merge(base, map[string]string{
		"endDate":   "endDate must be after startDate",
		"travelers": "travelers must be less than or equal to 10",
	})

	fields := failure.GetFields(merged)
	assert.Equal(t, "endDate is required", fields["endDate"])
	assert.Contains(t, fields, "travelers")

	assert.Nil(t, validator.Merge(nil, nil))

	fromNil := validator.Merge(nil, map[string]string{"endDate": "endDate must be after startDate"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(fromNil))
}

func TestDecode(t *testing.T) {
	var data travellerForm

	err := validator.Decode(strings.NewReader(`{"fullName":"A"}`), &data)
	require.NoError(t, err)
	assert.Equal(t, "A", data.Name)

	err = validator.Decode(strings.NewReader(`not json`), &data)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
