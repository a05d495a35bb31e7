package bootstrap

import (
	"log/slog"
	"net/http"

	"villanest/internal/infra/mailer"
	"villanest/internal/pkg/config"
	"villanest/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) (commands.Mailer, error) {
	if cfg.Mail.APIKey == "" {
		slog.Warn("MAIL_RESEND_API_KEY not set; booking e-mails will be logged only")
		return mailer.LogMailer{}, nil
	}
	return mailer.NewResendMailer(cfg.Mail, &http.Client{Timeout: cfg.Mail.Timeout})
}
