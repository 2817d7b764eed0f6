package mailer

import (
	"strconv"

	"Smart-Fridge-Manager/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	// Mailer is built once at startup and shared by reference; it is never
	// reinitialized per call.
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	smtpMailer struct {
		dialer     *gomail.Dialer
		senderName string
		authEmail  string
	}
)

func NewSMTPMailer() (Mailer, error) {
	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return nil, err
	}

	authEmail := utils.GetConfig("SMTP_AUTH_EMAIL")
	dialer := gomail.NewDialer(
		utils.GetConfig("SMTP_HOST"),
		port,
		authEmail,
		utils.GetConfig("SMTP_AUTH_PASSWORD"),
	)

	return &smtpMailer{
		dialer:     dialer,
		senderName: utils.GetConfig("SMTP_SENDER_NAME"),
		authEmail:  authEmail,
	}, nil
}

func (m *smtpMailer) Send(toEmail string, subject string, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.authEmail, m.senderName)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
