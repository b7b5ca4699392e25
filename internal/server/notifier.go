// internal/server/notifier.go
package server

import (
	"context"
	"fmt"

	"laundry-king/internal/common/config"
	"laundry-king/internal/common/logger"
)

// SMSSender delivers a text message; backed by AWS SNS in production-like
// environments.
type SMSSender interface {
	PublishSMS(ctx context.Context, phone, message, senderID string) error
}

// EmailSender delivers a plain-text email; backed by AWS SES.
type EmailSender interface {
	SendSimpleEmail(ctx context.Context, from, to, subject, body string) error
}

// Notifier sends the OTP text and the order confirmation email. With both
// channels disabled (the development default) payloads are only logged, so
// the flows stay testable without AWS credentials.
type Notifier struct {
	cfg    config.NotificationConfig
	sms    SMSSender
	email  EmailSender
	logger logger.Logger
}

func NewNotifier(cfg config.NotificationConfig, sms SMSSender, email EmailSender, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Notifier{
		cfg:    cfg,
		sms:    sms,
		email:  email,
		logger: log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

// SendOTP delivers the one-time code to phone. Delivery failures are
// reported to the caller; the code stays stored so the user can retry the
// send from the client.
func (n *Notifier) SendOTP(ctx context.Context, phone, code string) error {
	message := fmt.Sprintf("Your Laundry King verification code is %s", code)

	if !n.cfg.SMS.Enabled || n.sms == nil {
		n.logger.Info("SMS disabled, logging OTP instead", map[string]interface{}{
			"phone": phone,
			"code":  code,
		})
		return nil
	}

	if err := n.sms.PublishSMS(ctx, "+91"+phone, message, n.cfg.SMS.SenderID); err != nil {
		n.logger.Error("failed to send OTP SMS", map[string]interface{}{
			"phone": phone,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// SendOrderConfirmation emails a short receipt. Best-effort: the order is
// already accepted, so failures are logged and swallowed.
func (n *Notifier) SendOrderConfirmation(ctx context.Context, orderID string, order OrderRequest) {
	if !n.cfg.Email.Enabled || n.email == nil {
		n.logger.Debug("email disabled, skipping order confirmation", map[string]interface{}{
			"orderId": orderID,
		})
		return
	}

	body := fmt.Sprintf(
		"Order %s received.\nItems: %d\nTotal: ₹%d\nPickup: %s\n",
		orderID, itemCount(order), order.Total, order.Location,
	)
	err := n.email.SendSimpleEmail(ctx, n.cfg.Email.FromEmail, n.cfg.Email.FromEmail,
		"Laundry King order "+orderID, body)
	if err != nil {
		n.logger.Warn("failed to send order confirmation email", map[string]interface{}{
			"orderId": orderID,
			"error":   err.Error(),
		})
	}
}

func itemCount(order OrderRequest) int {
	n := 0
	for _, item := range order.Items {
		n += item.Qty
	}
	return n
}
