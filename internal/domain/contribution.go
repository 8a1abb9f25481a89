package domain

import "errors"

// CalledByContribution marks income rows created by the payment callback
// rather than by hand.
const CalledByContribution = "CONTRIBUTION"

type CreateOrderRequest struct {
	Amount float64 `json:"amount"` // major currency units
}

// ContributionData is the donor-supplied payload persisted once a payment
// callback verifies.
type ContributionData struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email,omitempty"`
	Amount      float64 `json:"amount"`
	Message     string  `json:"message,omitempty"`
}

func (c *ContributionData) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Amount < 1 {
		return errors.New("amount must be at least 1")
	}
	return nil
}

// VerifyPaymentRequest is the provider callback relayed by the client
// widget after checkout.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string           `json:"razorpay_order_id"`
	RazorpayPaymentID string           `json:"razorpay_payment_id"`
	RazorpaySignature string           `json:"razorpay_signature"`
	ContributionData  ContributionData `json:"contributionData"`
}

func (r *VerifyPaymentRequest) Validate() error {
	if r.RazorpayOrderID == "" || r.RazorpayPaymentID == "" || r.RazorpaySignature == "" {
		return errors.New("order id, payment id and signature are required")
	}
	return r.ContributionData.Validate()
}

// Receipt is the payload held by the client for one print/view cycle after
// a verified contribution.
type Receipt struct {
	ReceiptNumber string  `json:"receipt_number"`
	Name          string  `json:"name"`
	PhoneNumber   string  `json:"phone_number"`
	Amount        float64 `json:"amount"`
	OrderID       string  `json:"order_id"`
	PaymentID     string  `json:"payment_id"`
	DateTime      string  `json:"datetime"`
}
