package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"villanest/internal/domain/booking"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type bookingConfirmedData struct {
	Heading       string
	GuestName     string
	VillaName     string
	VillaLocation string
	TypeLabel     string
	Dates         string
	Hours         string
	PaymentMethod string
	TransactionID string
	Status        string
	BasePrice     string
	TaxAmount     string
	TotalPrice    string
	PayOnArrival  bool
}

// Email is a rendered message ready for delivery.
type Email struct {
	To      string
	Subject string
	HTML    string
}

func RenderBookingConfirmation(msg shared.BookingConfirmation) (Email, error) {
	confirmed := msg.Status == booking.StatusConfirmed.String()
	heading := "Booking Reserved"
	if confirmed {
		heading = "Booking Confirmed"
	}

	data := bookingConfirmedData{
		Heading:       heading,
		GuestName:     msg.GuestName,
		VillaName:     msg.VillaName,
		VillaLocation: msg.VillaLocation,
		TypeLabel:     "Overnight stay",
		Dates:         msg.StartDate,
		PaymentMethod: strings.ToUpper(msg.PaymentMethod),
		TransactionID: msg.TransactionID,
		Status:        msg.Status,
		BasePrice:     formatRupees(msg.BasePrice),
		TaxAmount:     formatRupees(msg.TaxAmount),
		TotalPrice:    formatRupees(msg.TotalPrice),
		PayOnArrival:  msg.PaymentMethod == booking.PaymentCOD.String(),
	}
	if msg.BookingType == booking.TypeHourly.String() {
		data.TypeLabel = "Day visit"
		data.Hours = fmt.Sprintf("%s - %s", msg.StartTime, msg.EndTime)
	}
	if msg.EndDate != "" && msg.EndDate != msg.StartDate {
		data.Dates = msg.StartDate + " to " + msg.EndDate
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "booking_confirmed.html", data); err != nil {
		return Email{}, errs.Wrap(err, "failed to render booking confirmation")
	}

	return Email{
		To:      msg.GuestEmail,
		Subject: heading + ": " + msg.VillaName,
		HTML:    buf.String(),
	}, nil
}

// formatRupees groups digits the Indian way: 1234567 -> ₹12,34,567.
func formatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(parts, ",") + "," + tail
	}
	return sign + "₹" + s
}
