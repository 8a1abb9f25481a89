package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/mailer"
	"github.com/veritas25/fundbooth/internal/payments"
	"github.com/veritas25/fundbooth/internal/repository"
	"github.com/veritas25/fundbooth/pkg/events"
	"github.com/veritas25/fundbooth/pkg/logger"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (payments.Order, error)
	VerifyPayment(ctx context.Context, req *domain.VerifyPaymentRequest) (*domain.Receipt, error)
}

type paymentService struct {
	orderClient payments.OrderClient
	projectRepo repository.ProjectRepository
	incomeRepo  repository.IncomeRepository
	mailer      mailer.Service
	eventBus    events.Publisher
	keySecret   string
	currency    string
	now         func() time.Time
}

func NewPaymentService(
	orderClient payments.OrderClient,
	projectRepo repository.ProjectRepository,
	incomeRepo repository.IncomeRepository,
	mailer mailer.Service,
	eventBus events.Publisher,
	keySecret, currency string,
) PaymentService {
	return &paymentService{
		orderClient: orderClient,
		projectRepo: projectRepo,
		incomeRepo:  incomeRepo,
		mailer:      mailer,
		eventBus:    eventBus,
		keySecret:   keySecret,
		currency:    currency,
		now:         time.Now,
	}
}

// CreateOrder creates a provider-side order for a contribution attempt.
// Amounts are major units and must be at least 1; conversion to minor
// units happens here. Provider failures surface to the caller after a
// single attempt, no retry.
func (s *paymentService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (payments.Order, error) {
	if req.Amount < 1 {
		return nil, domain.ErrInvalidAmount
	}

	amountMinor := int64(req.Amount * 100)
	receipt := fmt.Sprintf("contribution_%d", s.now().UnixMilli())
	notes := map[string]interface{}{
		"purpose": "Veritas-25 Contribution",
	}

	order, err := s.orderClient.CreateOrder(amountMinor, s.currency, receipt, notes)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create payment order", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderCreation, err)
	}

	if s.eventBus != nil {
		orderID, _ := order["id"].(string)
		event := events.ContributionOrderCreatedEvent{
			OrderID:   orderID,
			Amount:    amountMinor,
			Currency:  s.currency,
			Receipt:   receipt,
			CreatedAt: s.now(),
		}
		if err := s.eventBus.Publish(ctx, events.ContributionOrderCreated, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish order created event", "error", err)
		}
	}

	return order, nil
}

// VerifyPayment authenticates a provider callback and records the
// contribution. The signature check is the sole authenticity guarantee in
// the payment path; on mismatch nothing is persisted.
//
// A replayed valid callback inserts a duplicate income row: there is no
// idempotency key check against the payment id. Known gap, kept as the
// observed behavior.
func (s *paymentService) VerifyPayment(ctx context.Context, req *domain.VerifyPaymentRequest) (*domain.Receipt, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !payments.VerifySignature(s.keySecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return nil, domain.ErrSignatureMismatch
	}

	project, err := s.projectRepo.FindByName(ctx, domain.ContributionProjectName)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to look up contribution project", "error", err)
		return nil, domain.ErrProjectNotFound
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	description := req.ContributionData.Message
	if description == "" {
		description = "Contribution for Veritas-25"
	}
	calledBy := domain.CalledByContribution

	now := s.now()
	income := &domain.CreateIncomeRequest{
		Name:         req.ContributionData.Name,
		PhoneNumber:  &req.ContributionData.PhoneNumber,
		Amount:       req.ContributionData.Amount,
		Description:  &description,
		Date:         now.Format("2006-01-02"),
		CalledStatus: true,
		CalledBy:     &calledBy,
	}

	if _, err := s.incomeRepo.Create(ctx, project.ID, income); err != nil {
		// Verified but unrecorded: the payment cleared the signature check
		// and the row insert failed. Surfaced as a persistence error, not
		// reconciled automatically.
		logger.ErrorContext(ctx, "Failed to store contribution record",
			"error", err,
			"order_id", req.RazorpayOrderID,
			"payment_id", req.RazorpayPaymentID,
		)
		return nil, domain.ErrPersistence
	}

	receipt := &domain.Receipt{
		ReceiptNumber: uuid.NewString(),
		Name:          req.ContributionData.Name,
		PhoneNumber:   req.ContributionData.PhoneNumber,
		Amount:        req.ContributionData.Amount,
		OrderID:       req.RazorpayOrderID,
		PaymentID:     req.RazorpayPaymentID,
		DateTime:      now.Format(time.RFC3339),
	}

	if s.mailer != nil && req.ContributionData.Email != "" {
		if err := s.mailer.SendReceiptEmail(req.ContributionData.Email, req.ContributionData.Name, *receipt); err != nil {
			logger.WarnContext(ctx, "Failed to send receipt email", "error", err)
			// Receipt email is best-effort; the contribution is recorded.
		}
	}

	if s.eventBus != nil {
		event := events.ContributionRecordedEvent{
			ProjectID:  project.ID,
			OrderID:    req.RazorpayOrderID,
			PaymentID:  req.RazorpayPaymentID,
			DonorName:  req.ContributionData.Name,
			Amount:     req.ContributionData.Amount,
			RecordedAt: now,
		}
		if err := s.eventBus.Publish(ctx, events.ContributionRecorded, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish contribution recorded event", "error", err)
		}
	}

	return receipt, nil
}
