package mailer

import (
	"fmt"

	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/pkg/logger"
)

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendReceiptEmail(toEmail, toName string, receipt domain.Receipt) error {
	logger.Info("📧 [DEV MAIL] Contribution Receipt",
		"to", toEmail,
		"name", toName,
		"receipt_number", receipt.ReceiptNumber,
		"amount", receipt.Amount,
		"order_id", receipt.OrderID,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 CONTRIBUTION RECEIPT (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s (%s)\n"+
		"Subject: Your Veritas-25 contribution receipt\n"+
		"\n"+
		"Receipt No: %s\n"+
		"Amount: %.2f\n"+
		"Order ID: %s\n"+
		"Payment ID: %s\n"+
		"Date: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, toName, receipt.ReceiptNumber, receipt.Amount,
		receipt.OrderID, receipt.PaymentID, receipt.DateTime)

	return nil
}
