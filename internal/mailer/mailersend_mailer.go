package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
	"github.com/veritas25/fundbooth/internal/domain"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendReceiptEmail(toEmail, toName string, receipt domain.Receipt) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "Your Veritas-25 contribution receipt"
	html := fmt.Sprintf(`
		<h2>Thank you for your contribution!</h2>
		<p>Hi %s,</p>
		<p>We have received your contribution of <strong>₹%.2f</strong>.</p>
		<table>
			<tr><td>Receipt No.</td><td><strong>%s</strong></td></tr>
			<tr><td>Order ID</td><td>%s</td></tr>
			<tr><td>Payment ID</td><td>%s</td></tr>
			<tr><td>Date</td><td>%s</td></tr>
		</table>
		<p>This email serves as your receipt. Keep it for your records.</p>
	`, toName, receipt.Amount, receipt.ReceiptNumber, receipt.OrderID, receipt.PaymentID, receipt.DateTime)

	text := fmt.Sprintf(
		"Thank you for your contribution of %.2f.\nReceipt No: %s\nOrder ID: %s\nPayment ID: %s\nDate: %s",
		receipt.Amount, receipt.ReceiptNumber, receipt.OrderID, receipt.PaymentID, receipt.DateTime,
	)

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
