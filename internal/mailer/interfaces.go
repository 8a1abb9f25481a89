package mailer

import "github.com/veritas25/fundbooth/internal/domain"

type Service interface {
	SendReceiptEmail(toEmail, toName string, receipt domain.Receipt) error
}
