package mail

import (
	"context"
	"fmt"

	"rice-shop/internal/model"
	"rice-shop/internal/repository"

	"github.com/rs/zerolog"
)

// Dispatcher renders and sends the shop's transactional emails. Callers
// own the failure policy: the initial OTP send is essential and its
// error must propagate, while the delivery notice is best-effort.
type Dispatcher interface {
	// SendOtp sends the OTP (or resent-OTP) message. langHint is the
	// request-scoped header hint; language falls back to the stored
	// preference and a script heuristic on the address.
	SendOtp(ctx context.Context, email, code string, resent bool, langHint string) error

	// SendOrderConfirmation sends the customer confirmation in the
	// order's stored language.
	SendOrderConfirmation(ctx context.Context, order *model.Order, detailsHTML string) error

	// SendAdminNewOrder notifies the shop operator about a confirmed
	// order. It is a no-op when no operator address is configured.
	SendAdminNewOrder(ctx context.Context, order *model.Order, detailsHTML string) error

	// SendDelivery sends the delivered notice in the order's stored
	// language.
	SendDelivery(ctx context.Context, order *model.Order, detailsHTML string) error
}

// dispatcher implements Dispatcher on top of a Mailer.
type dispatcher struct {
	mailer         Mailer
	prefs          repository.PreferenceRepository
	shopOwnerEmail string
	logger         zerolog.Logger
}

// NewDispatcher creates the transactional email dispatcher.
func NewDispatcher(mailer Mailer, prefs repository.PreferenceRepository, shopOwnerEmail string, logger zerolog.Logger) Dispatcher {
	return &dispatcher{
		mailer:         mailer,
		prefs:          prefs,
		shopOwnerEmail: shopOwnerEmail,
		logger:         logger.With().Str("component", "mail-dispatcher").Logger(),
	}
}

// SendOtp sends the OTP message in the detected language.
func (d *dispatcher) SendOtp(ctx context.Context, email, code string, resent bool, langHint string) error {
	lang := detectLanguage(ctx, d.prefs, d.logger, email, langHint)

	d.logger.Debug().
		Str("email", email).
		Str("language", lang).
		Bool("resent", resent).
		Msg("sending OTP email")

	subject, text, html := OtpEmail(lang, code, resent)
	if err := d.mailer.Send(ctx, email, subject, text, html); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// SendOrderConfirmation sends the customer confirmation email.
func (d *dispatcher) SendOrderConfirmation(ctx context.Context, order *model.Order, detailsHTML string) error {
	lang := order.Language
	if !model.ValidLanguage(lang) {
		lang = model.LanguageEnglish
	}

	subject, text, html := OrderConfirmationEmail(
		lang, order.Name, order.PurchaseOrderNumber, FormatMMK(order.TotalPrice), detailsHTML,
	)
	if err := d.mailer.Send(ctx, order.Email, subject, text, html); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// SendAdminNewOrder notifies the shop operator about a confirmed order.
func (d *dispatcher) SendAdminNewOrder(ctx context.Context, order *model.Order, detailsHTML string) error {
	if d.shopOwnerEmail == "" {
		d.logger.Debug().Msg("no shop owner email configured, skipping admin notification")
		return nil
	}

	subject, text, html := AdminNewOrderEmail(
		order.Name, order.Email, order.Address, detailsHTML, FormatMMK(order.TotalPrice),
	)
	if err := d.mailer.Send(ctx, d.shopOwnerEmail, subject, text, html); err != nil {
		return fmt.Errorf("failed to send admin notification email: %w", err)
	}
	return nil
}

// SendDelivery sends the delivered notice.
func (d *dispatcher) SendDelivery(ctx context.Context, order *model.Order, detailsHTML string) error {
	lang := order.Language
	if !model.ValidLanguage(lang) {
		lang = model.LanguageEnglish
	}

	subject, text, html := DeliveryEmail(lang, order.Name, order.PurchaseOrderNumber, detailsHTML)
	if err := d.mailer.Send(ctx, order.Email, subject, text, html); err != nil {
		return fmt.Errorf("failed to send delivery email: %w", err)
	}
	return nil
}
