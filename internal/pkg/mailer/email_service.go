package mailer

import (
	"fmt"
	"sort"
	"strings"

	"support-chat-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLeadNotification(toEmail, brandName string, lead *entity.Lead) error
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

func (s *emailService) SendLeadNotification(toEmail, brandName string, lead *entity.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New %s lead from the chat widget", brandName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Lead Captured</h2>
			<p>A visitor submitted the <strong>%s</strong> form on the %s chat widget.</p>
			<table style="border-collapse: collapse;">
				%s
			</table>
			<p style="color: #888; font-size: 12px;">Lead ID: %s &middot; Source: %s</p>
		</div>
	`, lead.FormType, brandName, renderPayloadRows(lead.Payload), lead.Id, lead.Source)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send lead notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Lead notification sent to %s\n", toEmail)
	return nil
}

func renderPayloadRows(payload map[string]interface{}) string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b,
			`<tr><td style="padding: 4px 12px 4px 0; font-weight: bold;">%s</td><td style="padding: 4px 0;">%v</td></tr>`,
			k, payload[k])
	}
	return b.String()
}
