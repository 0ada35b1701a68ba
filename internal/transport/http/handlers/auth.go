package http_handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/aishki/bazario/internal/application/auth"
	"github.com/aishki/bazario/internal/domain"
	"github.com/aishki/bazario/internal/logger"
	"github.com/aishki/bazario/internal/metrics"
	"github.com/aishki/bazario/internal/transport/http/dto"
	"github.com/aishki/bazario/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Authenticate handles POST /api/auth. The body carries an action
// discriminator; the same bytes are decoded a second time into the
// action-specific request type.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidJSON(err))
		return
	}

	var env dto.Envelope
	if err := response.DecodeJSON(body, &env); err != nil {
		response.WriteError(w, r, err)
		return
	}

	switch env.Action {
	case dto.ActionLogin:
		h.login(w, r, body)
	case dto.ActionRegister:
		h.register(w, r, body)
	default:
		response.WriteError(w, r, domain.ErrUnknownAction(env.Action))
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(body, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if isAuthFailure(err) {
			metrics.RecordLoginFailure()
		}
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("user_id", res.User.ID).
		Str("role", res.User.Role).
		Msg("user_logged_in")
	metrics.RecordLogin()

	out := dto.LoginResponse{
		Status:  "success",
		Message: "Login successful",
		UserID:  res.User.ID,
		Email:   res.User.Email,
		Role:    res.User.Role,
		Token:   res.Token,
	}
	if res.Vendor != nil {
		out.VendorID = res.Vendor.ID
		out.BusinessName = res.Vendor.BusinessName
	}

	response.OK(w, out)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(body, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,

		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Suffix:     req.Suffix,
		Phone:      req.Phone,

		Role: req.Role,

		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
		BusinessCategory:    req.BusinessCategory,
		Position:            req.Position,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	// The user row exists even when a profile write failed, so a failure
	// here is logged and counted but the request still succeeds.
	if res.ProfileErr != nil {
		log := logger.WithCtx(r.Context())
		log.Error().
			Err(res.ProfileErr).
			Str("user_id", res.UserID).
			Msg("profile_write_failed")
		metrics.RecordProfileWriteFailure(profileTable(res.ProfileErr))
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("user_id", res.UserID).
		Str("role", res.Role).
		Msg("user_registered")
	metrics.RecordRegistration()

	out := dto.RegisterResponse{
		Status:  "success",
		Message: "Registration successful",
		UserID:  res.UserID,
		Role:    res.Role,
	}
	if res.Vendor != nil {
		out.VendorID = res.Vendor.ID
		out.BusinessName = res.Vendor.BusinessName
	}

	response.OK(w, out)
}

func isAuthFailure(err error) bool {
	var de *domain.Error
	return errors.As(err, &de) && de.Kind == domain.KindAuth
}

func profileTable(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Meta != nil && de.Meta["table"] != "" {
		return de.Meta["table"]
	}
	return "unknown"
}
