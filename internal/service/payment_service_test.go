package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/payments"
	"github.com/veritas25/fundbooth/internal/service"
	"github.com/veritas25/fundbooth/pkg/events"
)

const testSecret = "test-key-secret"

func newPaymentService(
	orderClient *mockOrderClient,
	projectRepo *mockProjectRepo,
	incomeRepo *mockIncomeRepo,
	mail *mockMailer,
	bus *mockPublisher,
) service.PaymentService {
	var publisher events.Publisher
	if bus != nil {
		publisher = bus
	}
	return service.NewPaymentService(orderClient, projectRepo, incomeRepo, mail, publisher, testSecret, "INR")
}

func validVerifyRequest(amount float64) *domain.VerifyPaymentRequest {
	orderID := "order_abc"
	paymentID := "pay_xyz"
	return &domain.VerifyPaymentRequest{
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: paymentID,
		RazorpaySignature: payments.ExpectedSignature(testSecret, orderID, paymentID),
		ContributionData: domain.ContributionData{
			Name:        "A",
			PhoneNumber: "9999999999",
			Amount:      amount,
		},
	}
}

func TestCreateOrderRejectsBadAmounts(t *testing.T) {
	svc := newPaymentService(&mockOrderClient{}, newMockProjectRepo(), newMockIncomeRepo(), &mockMailer{}, nil)

	for _, amount := range []float64{0, -5, 0.5} {
		_, err := svc.CreateOrder(context.Background(), &domain.CreateOrderRequest{Amount: amount})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestCreateOrderAcceptsMinimumAmount(t *testing.T) {
	client := &mockOrderClient{}
	svc := newPaymentService(client, newMockProjectRepo(), newMockIncomeRepo(), &mockMailer{}, nil)

	if _, err := svc.CreateOrder(context.Background(), &domain.CreateOrderRequest{Amount: 1}); err != nil {
		t.Fatalf("amount 1 should be accepted: %v", err)
	}
	if client.lastAmount != 100 {
		t.Errorf("expected 100 minor units, got %d", client.lastAmount)
	}
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	client := &mockOrderClient{}
	svc := newPaymentService(client, newMockProjectRepo(), newMockIncomeRepo(), &mockMailer{}, nil)

	order, err := svc.CreateOrder(context.Background(), &domain.CreateOrderRequest{Amount: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastAmount != 10000 {
		t.Errorf("expected 10000 minor units, got %d", client.lastAmount)
	}
	if client.lastCurrency != "INR" {
		t.Errorf("expected INR, got %s", client.lastCurrency)
	}
	if client.lastNotes["purpose"] != "Veritas-25 Contribution" {
		t.Errorf("unexpected notes: %v", client.lastNotes)
	}
	// Provider order is returned verbatim.
	if order["amount"] != int64(10000) {
		t.Errorf("expected order amount 10000, got %v", order["amount"])
	}
}

func TestCreateOrderSingleAttemptOnProviderFailure(t *testing.T) {
	client := &mockOrderClient{createErr: errors.New("provider unreachable")}
	svc := newPaymentService(client, newMockProjectRepo(), newMockIncomeRepo(), &mockMailer{}, nil)

	_, err := svc.CreateOrder(context.Background(), &domain.CreateOrderRequest{Amount: 10})
	if !errors.Is(err, domain.ErrOrderCreation) {
		t.Errorf("expected ErrOrderCreation, got %v", err)
	}
}

func TestVerifyPaymentSuccess(t *testing.T) {
	projectRepo := newMockProjectRepo()
	projectRepo.add("proj-1", domain.ContributionProjectName, "irrelevant")
	incomeRepo := newMockIncomeRepo()
	mail := &mockMailer{}
	bus := &mockPublisher{}

	svc := newPaymentService(&mockOrderClient{}, projectRepo, incomeRepo, mail, bus)

	req := validVerifyRequest(500)
	receipt, err := svc.VerifyPayment(context.Background(), req)
	if err != nil {
		t.Fatalf("expected verification to succeed: %v", err)
	}

	if len(incomeRepo.items) != 1 {
		t.Fatalf("expected exactly one income row, got %d", len(incomeRepo.items))
	}
	row := incomeRepo.items[0]
	if row.ProjectID != "proj-1" {
		t.Errorf("income recorded under wrong project: %s", row.ProjectID)
	}
	if row.Name != "A" || row.Amount != 500 {
		t.Errorf("unexpected income row: %+v", row)
	}
	if row.CalledBy == nil || *row.CalledBy != domain.CalledByContribution {
		t.Errorf("expected called_by marker %q, got %v", domain.CalledByContribution, row.CalledBy)
	}
	if !row.CalledStatus {
		t.Error("expected called_status true")
	}
	today := time.Now().Format("2006-01-02")
	if row.Date.Format("2006-01-02") != today {
		t.Errorf("expected date %s, got %s", today, row.Date.Format("2006-01-02"))
	}
	if row.Description == nil || *row.Description != "Contribution for Veritas-25" {
		t.Errorf("expected default description, got %v", row.Description)
	}

	if receipt.OrderID != "order_abc" || receipt.PaymentID != "pay_xyz" {
		t.Errorf("receipt references wrong payment: %+v", receipt)
	}
	if receipt.ReceiptNumber == "" {
		t.Error("expected a receipt number")
	}

	if len(bus.subjects) != 1 || bus.subjects[0] != events.ContributionRecorded {
		t.Errorf("expected one %s event, got %v", events.ContributionRecorded, bus.subjects)
	}
}

func TestVerifyPaymentUsesDonorMessage(t *testing.T) {
	projectRepo := newMockProjectRepo()
	projectRepo.add("proj-1", domain.ContributionProjectName, "irrelevant")
	incomeRepo := newMockIncomeRepo()

	svc := newPaymentService(&mockOrderClient{}, projectRepo, incomeRepo, &mockMailer{}, nil)

	req := validVerifyRequest(50)
	req.ContributionData.Message = "Good luck!"
	if _, err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := incomeRepo.items[0]
	if row.Description == nil || *row.Description != "Good luck!" {
		t.Errorf("expected donor message as description, got %v", row.Description)
	}
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	projectRepo := newMockProjectRepo()
	projectRepo.add("proj-1", domain.ContributionProjectName, "irrelevant")
	incomeRepo := newMockIncomeRepo()

	svc := newPaymentService(&mockOrderClient{}, projectRepo, incomeRepo, &mockMailer{}, nil)

	req := validVerifyRequest(500)
	req.RazorpaySignature = req.RazorpaySignature[:len(req.RazorpaySignature)-1] + "0"
	if req.RazorpaySignature == payments.ExpectedSignature(testSecret, req.RazorpayOrderID, req.RazorpayPaymentID) {
		req.RazorpaySignature = req.RazorpaySignature[:len(req.RazorpaySignature)-1] + "1"
	}

	_, err := svc.VerifyPayment(context.Background(), req)
	if !errors.Is(err, domain.ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
	if len(incomeRepo.items) != 0 {
		t.Error("nothing must be persisted on signature mismatch")
	}
}

func TestVerifyPaymentProjectMissing(t *testing.T) {
	svc := newPaymentService(&mockOrderClient{}, newMockProjectRepo(), newMockIncomeRepo(), &mockMailer{}, nil)

	_, err := svc.VerifyPayment(context.Background(), validVerifyRequest(500))
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestVerifyPaymentPersistenceFailure(t *testing.T) {
	projectRepo := newMockProjectRepo()
	projectRepo.add("proj-1", domain.ContributionProjectName, "irrelevant")
	incomeRepo := newMockIncomeRepo()
	incomeRepo.createErr = errDatabaseDown

	svc := newPaymentService(&mockOrderClient{}, projectRepo, incomeRepo, &mockMailer{}, nil)

	_, err := svc.VerifyPayment(context.Background(), validVerifyRequest(500))
	if !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

// A replayed identical valid callback inserts a second income row. There is
// no idempotency key, and the test pins that down rather than assuming dedup.
func TestVerifyPaymentReplayInsertsDuplicate(t *testing.T) {
	projectRepo := newMockProjectRepo()
	projectRepo.add("proj-1", domain.ContributionProjectName, "irrelevant")
	incomeRepo := newMockIncomeRepo()

	svc := newPaymentService(&mockOrderClient{}, projectRepo, incomeRepo, &mockMailer{}, nil)

	req := validVerifyRequest(500)
	if _, err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("first callback: %v", err)
	}
	if _, err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("replayed callback: %v", err)
	}

	if len(incomeRepo.items) != 2 {
		t.Errorf("expected duplicate insert on replay (known gap), got %d rows", len(incomeRepo.items))
	}
}

func TestVerifyPaymentReceiptEmailIsBestEffort(t *testing.T) {
	projectRepo := newMockProjectRepo()
	projectRepo.add("proj-1", domain.ContributionProjectName, "irrelevant")
	incomeRepo := newMockIncomeRepo()
	mail := &mockMailer{sendErr: errors.New("smtp down")}

	svc := newPaymentService(&mockOrderClient{}, projectRepo, incomeRepo, mail, nil)

	req := validVerifyRequest(500)
	req.ContributionData.Email = "donor@example.com"
	if _, err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("mailer failure must not fail verification: %v", err)
	}
	if mail.sent != 1 {
		t.Errorf("expected one send attempt, got %d", mail.sent)
	}
	if len(incomeRepo.items) != 1 {
		t.Errorf("contribution must still be recorded, got %d rows", len(incomeRepo.items))
	}
}
