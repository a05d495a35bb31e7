package mailer

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"villanest/internal/pkg/config"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/shared"

	"github.com/resend/resend-go/v2"
)

var ErrDeliveryRejected = errs.New("mail provider rejected the message")

// ResendMailer sends rendered mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(cfg config.MailConfig, httpClient *http.Client) (*ResendMailer, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid resend base url %q", cfg.BaseURL)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = base
	}
	return &ResendMailer{client: client, from: cfg.From}, nil
}

func (m *ResendMailer) SendBookingConfirmation(ctx context.Context, msg shared.BookingConfirmation) error {
	email, err := RenderBookingConfirmation(msg)
	if err != nil {
		return err
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		var transportErr *url.Error
		if errs.As(err, &transportErr) {
			return errs.Wrap(err, "mail request failed")
		}
		return errs.Mark(errs.Wrap(err, "resend"), ErrDeliveryRejected)
	}

	slog.Info("booking confirmation sent", "booking_id", msg.BookingID, "to", email.To, "provider_id", sent.Id)
	return nil
}

// LogMailer renders mail and logs it instead of sending. Used when no API key is set.
type LogMailer struct{}

func (LogMailer) SendBookingConfirmation(_ context.Context, msg shared.BookingConfirmation) error {
	email, err := RenderBookingConfirmation(msg)
	if err != nil {
		return err
	}
	slog.Info("mail delivery disabled; booking confirmation logged",
		"booking_id", msg.BookingID,
		"to", email.To,
		"subject", email.Subject)
	return nil
}
