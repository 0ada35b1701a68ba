package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aishki/bazario/internal/domain"
)

var validate = validator.New()

// Actions accepted on the auth endpoint.
const (
	ActionLogin    = "login"
	ActionRegister = "register"
)

// Envelope carries only the action discriminator; the full body is decoded
// again into the per-action request type after dispatch.
type Envelope struct {
	Action string `json:"action"`
}

type LoginRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if err := validate.Struct(r); err != nil {
		return domain.ErrLoginFieldsRequired()
	}
	return nil
}

type RegisterRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required"`

	FirstName  string `json:"first_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" validate:"required"`
	Suffix     string `json:"suffix"`
	Phone      string `json:"phone"`

	Role string `json:"role"`

	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	BusinessCategory    string `json:"business_category"`
	Position            string `json:"position"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	if err := validate.Struct(r); err != nil {
		return domain.ErrRegisterFieldsRequired()
	}
	return nil
}
