package mailer

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/constants"
	"go.uber.org/zap"
)

// Kind selects the template pair (user confirmation + admin notification).
type Kind string

const (
	KindNewsletter Kind = "newsletter"
	KindContact    Kind = "contact"
	KindPurchase   Kind = "purchase"
)

// Data carries the template fields. Unused fields are ignored by templates
// that don't reference them.
type Data struct {
	FirstName    string
	LastName     string
	Email        string
	Organization string
	Subject      string
	Message      string
	BookID       string
	Format       string
	Quantity     int
	TotalAmount  float64
	OrderID      string

	AdminEmail string
}

// Mailer sends transactional email through the Resend HTTP API. Every send
// is best-effort from the caller's point of view: callers log the returned
// error and move on.
type Mailer struct {
	cfg    config.EmailConfig
	client *resty.Client
	log    *zap.SugaredLogger
}

func New(cfg config.EmailConfig, log *zap.SugaredLogger) *Mailer {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(string(cfg.APIKey)).
		SetTimeout(time.Second * 10)
	for _, header := range constants.DefaultOutboundRequestHeaders {
		client.SetHeader(header.Name, header.Value)
	}

	return &Mailer{
		cfg:    cfg,
		client: client,
		log:    log,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) send(ctx context.Context, to, subject, html string) error {
	if !m.cfg.IsEnabled() {
		m.log.Debugw("email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendEmailRequest{
			From:    m.cfg.FromEmail,
			To:      []string{to},
			Subject: subject,
			HTML:    html,
		}).
		Post("/emails")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return errors.Errorf("failed to send email: %s: %s", resp.Status(), resp.String())
	}
	return nil
}

// SendConfirmation emails the user who submitted a form or completed a
// purchase.
func (m *Mailer) SendConfirmation(ctx context.Context, email string, kind Kind, data Data) error {
	data.AdminEmail = m.cfg.AdminEmail
	subject, html, err := renderConfirmation(kind, data)
	if err != nil {
		return err
	}
	return m.send(ctx, email, subject, html)
}

// SendNotification emails the configured admin address about a new
// submission.
func (m *Mailer) SendNotification(ctx context.Context, kind Kind, data Data) error {
	data.AdminEmail = m.cfg.AdminEmail
	subject, html, err := renderNotification(kind, data)
	if err != nil {
		return err
	}
	return m.send(ctx, m.cfg.AdminEmail, subject, html)
}
