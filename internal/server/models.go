package server

// Request/response DTOs for the three endpoints. The order shape mirrors the
// client payload exactly; the confirmation response is an echo of it.

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type SendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OrderItem struct {
	Name  string `json:"item"`
	Qty   int    `json:"qty"`
	Price int    `json:"price"`
}

type OrderRequest struct {
	Items    []OrderItem `json:"items"`
	Phone    string      `json:"phone"`
	Location string      `json:"location"`
	Total    int         `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
