package service

import (
	"bytes"
	"fmt"
	"indivoyage/internal/domains/booking/model"
	"indivoyage/shared/constant"
	"indivoyage/shared/timezone"

	"github.com/phpdave11/gofpdf"
)

func orDash(value string) string {
	if value == constant.Empty {
		return "-"
	}

	return value
}

func buildReceiptPDF(session model.Session) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("IndiVoyage Booking Receipt", false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "IndiVoyage Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Reference    : "+session.Reference)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Confirmed at : "+timezone.Format(session.ConfirmedAt, "2006-01-02 15:04"))
	pdf.Ln(10)

	sections := []struct {
		title string
		lines []string
	}{
		{
			title: model.StepPersonal.Label(),
			lines: []string{
				"Full name : " + orDash(session.Personal.FullName),
				"Email     : " + orDash(session.Personal.Email),
				"Phone     : " + orDash(session.Personal.Phone),
			},
		},
		{
			title: model.StepTrip.Label(),
			lines: []string{
				"Destination   : " + orDash(session.Trip.Destination),
				"Dates         : " + session.Trip.StartDate.Format(constant.DateOnlyFormat) + " to " + session.Trip.EndDate.Format(constant.DateOnlyFormat),
				fmt.Sprintf("Travelers     : %d", session.Trip.Travelers),
				"Accommodation : " + model.OptionLabel(model.AccommodationOptions, session.Trip.AccommodationType),
				"Transport     : " + model.OptionLabel(model.TransportOptions, session.Trip.TransportType),
			},
		},
		{
			title: "Payment",
			lines: []string{
				"Method : " + model.OptionLabel(model.PaymentOptions, session.Payment.Method),
			},
		},
	}

	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, section.title)
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 12)

		for _, line := range section.lines {
			pdf.Cell(0, 7, tr(line))
			pdf.Ln(7)
		}

		pdf.Ln(3)
	}

	if session.Trip.SpecialRequests != constant.Empty {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Special requests")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(session.Trip.SpecialRequests), "", "", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for choosing IndiVoyage. This receipt confirms a sample booking; no payment has been taken.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}
