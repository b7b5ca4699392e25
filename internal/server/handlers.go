// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"time"

	stderrors "laundry-king/internal/common/errors"
	"laundry-king/internal/common/logger"
	"laundry-king/internal/common/metrics"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

// orderSchema rejects malformed order payloads before they are echoed back.
// The shape matches the client payload exactly.
const orderSchema = `{
	"type": "object",
	"required": ["items", "phone", "location", "total"],
	"properties": {
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["item", "qty", "price"],
				"properties": {
					"item": {"type": "string", "minLength": 1},
					"qty": {"type": "integer", "minimum": 1},
					"price": {"type": "integer", "minimum": 0}
				},
				"additionalProperties": false
			}
		},
		"phone": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"total": {"type": "integer", "minimum": 0}
	},
	"additionalProperties": false
}`

// Handler serves the three ordering endpoints.
type Handler struct {
	otpStore *OTPStore
	notifier *Notifier
	logger   logger.Logger

	orderSchema *gojsonschema.Schema
}

func NewHandler(otpStore *OTPStore, notifier *Notifier, log logger.Logger) (*Handler, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(orderSchema))
	if err != nil {
		return nil, err
	}

	return &Handler{
		otpStore:    otpStore,
		notifier:    notifier,
		logger:      log.WithFields(map[string]interface{}{"component": "server"}),
		orderSchema: schema,
	}, nil
}

// SendOTP issues a one-time code for the requested phone and delivers it.
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	defer trackDuration("send-otp", time.Now())

	var req SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "phone is required")
		return
	}

	code, err := h.otpStore.Issue(r.Context(), req.Phone)
	if err != nil {
		h.logger.Error("failed to issue OTP", map[string]interface{}{
			"phone": req.Phone,
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "otp_issue_failed", "could not issue code")
		return
	}

	if err := h.notifier.SendOTP(r.Context(), req.Phone, code); err != nil {
		writeError(w, http.StatusBadGateway, "otp_delivery_failed", "could not deliver code")
		return
	}

	writeJSON(w, http.StatusOK, SendOTPResponse{Success: true, Message: "OTP sent"})
}

// Login verifies a phone/code pair.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	defer trackDuration("login", time.Now())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Phone == "" || req.OTP == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "phone and otp are required")
		return
	}

	if err := h.otpStore.Verify(r.Context(), req.Phone, req.OTP); err != nil {
		if stdErr, ok := err.(*stderrors.StandardError); ok && !stdErr.Retryable {
			writeError(w, http.StatusUnauthorized, string(stdErr.Code), stdErr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "otp_verify_failed", "could not verify code")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Message: "Login successful"})
}

// CreateOrder validates the payload against the order schema, assigns an id
// and echoes the payload back as the confirmation.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	defer trackDuration("orders", time.Now())

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	result, err := h.orderSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += desc.String()
		}
		stdErr := stderrors.NewPayloadInvalidError(details)
		writeError(w, http.StatusBadRequest, string(stdErr.Code), details)
		return
	}

	var order OrderRequest
	if err := json.Unmarshal(raw, &order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	orderID := uuid.NewString()
	h.logger.Info("order received", map[string]interface{}{
		"orderId": orderID,
		"items":   itemCount(order),
		"total":   order.Total,
		"phone":   order.Phone,
	})

	h.notifier.SendOrderConfirmation(r.Context(), orderID, order)

	// Confirmation is the payload echo; the client renders it unmodified.
	w.Header().Set("X-Order-Id", orderID)
	writeJSON(w, http.StatusCreated, order)
}

// Healthz reports liveness plus OTP store reachability.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.otpStore.redis.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "redis_unreachable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func trackDuration(endpoint string, start time.Time) {
	metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
