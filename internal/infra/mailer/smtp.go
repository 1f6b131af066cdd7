package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"seatwise/internal/domain/escalation"
	"seatwise/internal/pkg/config"
	"seatwise/internal/pkg/errs"
	"seatwise/internal/usecase/commands"
)

// SMTPMailer delivers large-party contact requests to the house mailbox.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var _ commands.LargePartyMailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendLargePartyContact(ctx context.Context, payload escalation.LargePartyPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Large party request: %d guests on %s %s",
		payload.PartySize, payload.RequestedDate, payload.RequestedTime)

	var body strings.Builder
	fmt.Fprintf(&body, "Customer: %s\r\n", payload.CustomerName)
	if payload.CustomerPhone != "" {
		fmt.Fprintf(&body, "Phone: %s\r\n", payload.CustomerPhone)
	}
	if payload.CustomerEmail != "" {
		fmt.Fprintf(&body, "Email: %s\r\n", payload.CustomerEmail)
	}
	fmt.Fprintf(&body, "Party size: %d\r\n", payload.PartySize)
	fmt.Fprintf(&body, "Requested: %s at %s\r\n", payload.RequestedDate, payload.RequestedTime)
	if payload.Note != "" {
		fmt.Fprintf(&body, "Note: %s\r\n", payload.Note)
	}
	body.WriteString("\r\nPlease contact the customer to arrange seating.\r\n")

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.FromAddress, m.cfg.ContactTo, subject, body.String())

	addr := m.cfg.Host + ":" + m.cfg.Port

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.FromAddress, []string{m.cfg.ContactTo}, []byte(msg)); err != nil {
		return errs.Wrap(err, "failed to send large party mail")
	}

	return nil
}
