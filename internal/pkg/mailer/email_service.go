// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendNotification(toEmail, subject, message string) error
	SendMonthlyReport(toEmail, customerName, reportHTML string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendNotification(toEmail, subject, message string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>%s</p>
			<p style="color: #888; font-size: 12px;">You are receiving this because of activity on your ServiceSphere account.</p>
		</div>
	`, subject, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send notification to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}

func (s *emailService) SendMonthlyReport(toEmail, customerName, reportHTML string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Monthly Activity Report")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>Here is a summary of your service activity for the past month:</p>
			%s
			<p>Thank you for using ServiceSphere.</p>
		</div>
	`, customerName, reportHTML)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send monthly report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Monthly report sent to %s\n", toEmail)
	return nil
}
