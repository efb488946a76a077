package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"rice-shop/internal/mail"
	"rice-shop/internal/metrics"
	"rice-shop/internal/model"
	"rice-shop/internal/ratelimit"
	"rice-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	otpRepo     repository.OtpRepository
	productRepo repository.ProductRepository
	dispatcher  mail.Dispatcher
	limiter     ratelimit.Limiter
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	otpRepo repository.OtpRepository,
	productRepo repository.ProductRepository,
	dispatcher mail.Dispatcher,
	limiter ratelimit.Limiter,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		otpRepo:     otpRepo,
		productRepo: productRepo,
		dispatcher:  dispatcher,
		limiter:     limiter,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// generatePurchaseOrderNumber builds a human-readable order identifier
// of the form PO-YYYYMMDD-NNNN. The 4-digit suffix is random with no
// collision retry; a clash surfaces as a unique-constraint failure on
// insert.
func generatePurchaseOrderNumber(now time.Time) string {
	return fmt.Sprintf("PO-%s-%04d", now.Format("20060102"), 1000+rand.IntN(9000))
}

// generateOtpCode returns a 6-digit code drawn uniformly from
// [100000, 999999].
func generateOtpCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

// Submit creates a pending order, issues an OTP and emails it. The
// order is committed before the send is attempted, so a mail failure
// leaves a pending order the customer can retry via resend.
func (s *orderService) Submit(ctx context.Context, req *model.OrderRequest, langHint string) (*model.OrderSubmitResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	language := req.Language
	if !model.ValidLanguage(language) {
		language = model.LanguageEnglish
	}

	// Snapshot catalogue prices. Lines referencing unknown products are
	// silently excluded rather than failing the whole order.
	var totalPrice float64
	for _, item := range req.Cart {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Error().Err(err).Str("product_id", item.ProductID.String()).Msg("failed to resolve cart line")
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		if product == nil {
			s.logger.Warn().
				Str("product_id", item.ProductID.String()).
				Msg("cart line references unknown product, skipping")
			continue
		}
		totalPrice += product.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := &model.Order{
		ID:                  uuid.New(),
		Name:                req.Name,
		Email:               req.Email,
		Address:             req.Address,
		Cart:                req.Cart,
		TotalPrice:          totalPrice,
		PurchaseOrderNumber: generatePurchaseOrderNumber(now),
		Confirmed:           false,
		Status:              model.OrderStatusPending,
		Language:            language,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	otp := &model.Otp{
		ID:        uuid.New(),
		Email:     req.Email,
		Code:      generateOtpCode(),
		ExpiresAt: now.Add(model.OtpTTL),
		CreatedAt: now,
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.otpRepo.Create(ctx, tx, otp); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersSubmittedTotal.Inc()
	metrics.OtpIssuedTotal.Inc()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("purchase_order_number", order.PurchaseOrderNumber).
		Float64("total_price", order.TotalPrice).
		Str("language", order.Language).
		Msg("order submitted")

	// The OTP email is essential: without it the customer cannot finish
	// the flow, so a failure propagates to the caller.
	if err := s.dispatcher.SendOtp(ctx, order.Email, otp.Code, false, langHint); err != nil {
		metrics.EmailsFailedTotal.WithLabelValues("otp").Inc()
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to send OTP email")
		return nil, fmt.Errorf("failed to send OTP email: %w", err)
	}
	metrics.EmailsSentTotal.WithLabelValues("otp").Inc()

	return &model.OrderSubmitResponse{
		OrderID: order.ID,
		Message: "OTP sent to email",
	}, nil
}

// Confirm verifies the OTP and finalises the order. The order mutation
// and the OTP consumption commit in one transaction; notifications go
// out afterwards.
func (s *orderService) Confirm(ctx context.Context, req *model.ConfirmOrderRequest) error {
	if req.OrderID == uuid.Nil || req.Email == "" || req.Code == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Missing required fields")
	}

	otp, err := s.otpRepo.FindByEmailAndCode(ctx, req.Email, req.Code)
	if err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}
	if otp == nil || otp.Expired(time.Now()) {
		metrics.OtpRejectedTotal.Inc()
		s.logger.Warn().
			Str("order_id", req.OrderID.String()).
			Bool("found", otp != nil).
			Msg("OTP verification rejected")
		return model.ErrInvalidOtp
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}
	// The email re-check guards against replaying a code issued for a
	// different customer's order. The rejection is the same generic one
	// so callers cannot probe which check failed.
	if order == nil || order.Email != req.Email {
		metrics.OtpRejectedTotal.Inc()
		return model.ErrInvalidOtp
	}
	// A leftover still-valid code for the same email must not re-confirm
	// the order and re-fire its notifications.
	if order.Confirmed {
		metrics.OtpRejectedTotal.Inc()
		return model.ErrInvalidOtp
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.SetConfirmed(ctx, tx, order.ID); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	// The code is single use.
	if err = s.otpRepo.Delete(ctx, tx, otp.ID); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	order.Confirmed = true
	order.Status = model.OrderStatusConfirmed

	metrics.OrdersConfirmedTotal.Inc()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("purchase_order_number", order.PurchaseOrderNumber).
		Msg("order confirmed")

	// Rebuilt from the catalogue for display only; the stored total is
	// never recomputed.
	detailsHTML, err := s.buildOrderDetailsHTML(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to render order details: %w", err)
	}

	if err := s.dispatcher.SendOrderConfirmation(ctx, order, detailsHTML); err != nil {
		metrics.EmailsFailedTotal.WithLabelValues("order_confirmed").Inc()
		return err
	}
	metrics.EmailsSentTotal.WithLabelValues("order_confirmed").Inc()

	if err := s.dispatcher.SendAdminNewOrder(ctx, order, detailsHTML); err != nil {
		metrics.EmailsFailedTotal.WithLabelValues("admin_new_order").Inc()
		return err
	}
	metrics.EmailsSentTotal.WithLabelValues("admin_new_order").Inc()

	return nil
}

// ResendOtp invalidates every prior code for the order's email and
// issues a fresh one. The delete and insert commit in one transaction.
func (s *orderService) ResendOtp(ctx context.Context, req *model.ResendOtpRequest, langHint string) error {
	if req.OrderID == uuid.Nil || req.Email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Missing required fields")
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return fmt.Errorf("failed to resend OTP: %w", err)
	}
	if order == nil || order.Email != req.Email {
		return model.ErrOrderNotFound
	}

	allowed, err := s.limiter.Allow(ctx, strings.ToLower(req.Email))
	if err != nil {
		// A broken limiter must not lock customers out of the flow.
		s.logger.Error().Err(err).Msg("rate limiter check failed, allowing resend")
	} else if !allowed {
		metrics.OtpResendLimitedTotal.Inc()
		return model.ErrOtpRateLimited
	}

	now := time.Now()
	otp := &model.Otp{
		ID:        uuid.New(),
		Email:     req.Email,
		Code:      generateOtpCode(),
		ExpiresAt: now.Add(model.OtpTTL),
		CreatedAt: now,
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to resend OTP: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.otpRepo.DeleteByEmail(ctx, tx, req.Email); err != nil {
		return fmt.Errorf("failed to resend OTP: %w", err)
	}

	if err = s.otpRepo.Create(ctx, tx, otp); err != nil {
		return fmt.Errorf("failed to resend OTP: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to resend OTP: %w", err)
	}

	metrics.OtpIssuedTotal.Inc()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Msg("OTP resent")

	if err := s.dispatcher.SendOtp(ctx, req.Email, otp.Code, true, langHint); err != nil {
		metrics.EmailsFailedTotal.WithLabelValues("otp_resent").Inc()
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	metrics.EmailsSentTotal.WithLabelValues("otp_resent").Inc()

	return nil
}

// UpdateStatus overwrites the order status. No transition table is
// enforced beyond rejecting unknown status values; the admin console is
// trusted to drive sensible transitions. The delivery notice goes out
// exactly once, on the transition into delivered of a confirmed order,
// and its failure never fails the update.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("Invalid status: %s", status))
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	previousStatus := order.Status

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	s.logger.Info().
		Str("order_id", id.String()).
		Str("previous_status", string(previousStatus)).
		Str("status", string(status)).
		Msg("order status updated")

	if status == model.OrderStatusDelivered && previousStatus != model.OrderStatusDelivered && order.Confirmed {
		metrics.OrdersDeliveredTotal.Inc()

		detailsHTML, err := s.buildOrderDetailsHTML(ctx, order)
		if err == nil {
			err = s.dispatcher.SendDelivery(ctx, order, detailsHTML)
		}
		if err != nil {
			// Status persistence is the primary effect; the notice is
			// best effort.
			metrics.EmailsFailedTotal.WithLabelValues("delivery").Inc()
			s.logger.Error().
				Err(err).
				Str("order_id", id.String()).
				Msg("failed to send delivery notification email")
		} else {
			metrics.EmailsSentTotal.WithLabelValues("delivery").Inc()
		}
	}

	return order, nil
}

// GetByID retrieves a single order.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// List retrieves all orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// buildOrderDetailsHTML renders the itemised cart rows for email
// bodies, resolving product names and prices at send time. Lines whose
// product no longer exists are omitted.
func (s *orderService) buildOrderDetailsHTML(ctx context.Context, order *model.Order) (string, error) {
	var b strings.Builder
	for _, item := range order.Cart {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return "", err
		}
		if product == nil {
			continue
		}
		subtotal := mail.FormatMMK(product.Price * float64(item.Quantity))
		b.WriteString(mail.OrderDetailRow(product.Name, product.SKU, item.Quantity, subtotal))
	}
	return b.String(), nil
}

// validateOrderRequest validates the submission payload.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Missing required fields")
	}

	if req.Name == "" || req.Email == "" || req.Address == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Missing required fields")
	}

	if len(req.Cart) == 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Cart must contain at least one item")
	}

	for i, item := range req.Cart {
		if item.Quantity < 1 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	if req.Language != "" && !model.ValidLanguage(req.Language) {
		return model.ErrInvalidLanguage
	}

	return nil
}
