package dto

// Responses keep the flat status/message shape the frontend already
// consumes. Vendor fields appear only on vendor flows.

type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Token   string `json:"token"`

	VendorID     string `json:"vendor_id,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
}

type RegisterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`

	VendorID     string `json:"vendor_id,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
