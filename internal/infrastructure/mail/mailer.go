package mail

import (
	"context"
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"

	"cuidandote_presupuestos/internal/domain/entities"
	"cuidandote_presupuestos/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")

const (
	defaultFromEmail  = "info@cuidandoteserviciosauxiliares.com"
	defaultFromName   = "Cuidándote Servicios Auxiliares"
	defaultDetalleURL = "https://cuidandoteserviciosauxiliares.com/presupuesto-cuidadores/"
)

// SMTPMailer delivers the quote notification mails over SMTP.
//
// Env vars:
//   - SMTP_HOST (required), SMTP_PORT (default 587)
//   - SMTP_USERNAME, SMTP_PASSWORD (optional; plain auth when set)
//   - MAIL_FROM, MAIL_FROM_NAME
//   - ADMIN_NOTIFICATION_EMAIL (defaults to MAIL_FROM)
//   - DETALLE_URL (public proposal page; the token is appended as a query arg)
type SMTPMailer struct {
	client     *gomail.Client
	fromEmail  string
	fromName   string
	adminEmail string
	detalleURL string
}

var _ interfaces.IMailSender = (*SMTPMailer)(nil)

func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("[mail][smtp] missing SMTP_HOST")
		return nil, ErrMissingSMTPHost
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("[mail][smtp] invalid SMTP_PORT=%q err=%v", v, err)
			return nil, err
		}
		port = p
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if user := os.Getenv("SMTP_USERNAME"); user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		log.Printf("[mail][smtp] failed creating client err=%v", err)
		return nil, err
	}

	fromEmail := getenvDefault("MAIL_FROM", defaultFromEmail)
	log.Printf("[mail][smtp] client initialized host=%s port=%d from=%s", host, port, fromEmail)

	return &SMTPMailer{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   getenvDefault("MAIL_FROM_NAME", defaultFromName),
		adminEmail: getenvDefault("ADMIN_NOTIFICATION_EMAIL", fromEmail),
		detalleURL: getenvDefault("DETALLE_URL", defaultDetalleURL),
	}, nil
}

func (m *SMTPMailer) SendClientQuote(ctx context.Context, q entities.Quote) error {
	subject, body, err := renderClientQuote(q, m.quoteURL(q.Token))
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromEmail); err != nil {
		return err
	}
	if err := msg.To(q.Email); err != nil {
		return err
	}
	if err := msg.ReplyTo(m.fromEmail); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][smtp] client quote delivery failed token=%s err=%v", q.Token, err)
		return err
	}
	log.Printf("[mail][smtp] client quote sent token=%s to=%s", q.Token, q.Email)
	return nil
}

func (m *SMTPMailer) SendAdminAlert(ctx context.Context, q entities.Quote) error {
	subject, body, err := renderAdminAlert(q)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromEmail); err != nil {
		return err
	}
	if err := msg.To(m.adminEmail); err != nil {
		return err
	}
	// Replying to the alert starts a conversation with the client.
	if err := msg.ReplyTo(q.Email); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][smtp] admin alert delivery failed token=%s err=%v", q.Token, err)
		return err
	}
	log.Printf("[mail][smtp] admin alert sent token=%s to=%s", q.Token, m.adminEmail)
	return nil
}

func (m *SMTPMailer) quoteURL(token string) string {
	u, err := url.Parse(m.detalleURL)
	if err != nil {
		return m.detalleURL + "?token=" + url.QueryEscape(token)
	}
	qs := u.Query()
	qs.Set("token", token)
	u.RawQuery = qs.Encode()
	return u.String()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
