package payments

import (
	"github.com/razorpay/razorpay-go"
)

// Order is the provider order object, returned to the caller verbatim.
type Order map[string]interface{}

// OrderClient creates provider-side payment orders.
type OrderClient interface {
	CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (Order, error)
}

type razorpayClient struct {
	client *razorpay.Client
}

// NewRazorpayClient wraps the Razorpay SDK behind the OrderClient interface.
func NewRazorpayClient(keyID, keySecret string) OrderClient {
	return &razorpayClient{client: razorpay.NewClient(keyID, keySecret)}
}

func (c *razorpayClient) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (Order, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}
	return Order(body), nil
}
