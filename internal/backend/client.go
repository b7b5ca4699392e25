// Package backend is the typed client for the ordering API: two auth
// endpoints and order creation. Any transport error or non-2xx response is
// an external-call failure the user may retry manually.
package backend

import (
	"context"
	"time"

	"laundry-king/internal/common/config"
	commonhttp "laundry-king/internal/common/http"
	"laundry-king/internal/common/logger"
	ordersubmit "laundry-king/internal/workflows/order-submit"
)

type Client struct {
	baseURL string
	http    *commonhttp.Client
	logger  logger.Logger
}

func NewClient(cfg config.BackendConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    commonhttp.NewClient(time.Duration(cfg.Timeout) * time.Millisecond),
		logger:  log.WithFields(map[string]interface{}{"component": "backend-client"}),
	}
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type loginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// SendOTP asks the backend to issue a one-time code. The success payload is
// opaque to the client.
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	return c.http.PostJSON(ctx, c.baseURL+"/auth/send-otp", sendOTPRequest{Phone: phone}, nil)
}

// VerifyOTP submits the phone and code for verification.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) error {
	return c.http.PostJSON(ctx, c.baseURL+"/auth/login", loginRequest{Phone: phone, OTP: otp}, nil)
}

// SubmitOrder creates the order and returns the server's confirmation echo;
// the confirmation view renders it without recomputation.
func (c *Client) SubmitOrder(ctx context.Context, payload ordersubmit.Payload) (*ordersubmit.Payload, error) {
	var confirmation ordersubmit.Payload
	if err := c.http.PostJSON(ctx, c.baseURL+"/orders", payload, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}
