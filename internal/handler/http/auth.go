package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService *auth.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService, jwtService: jwtService}
}

func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered successfully", map[string]interface{}{
		"id":    created.ID,
		"email": created.Email,
		"role":  created.Role,
	})
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	u, pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.Success(w, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
		"user": map[string]interface{}{
			"id":    u.ID,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}

func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req user.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		// Fall back to the cookie set at login.
		cookie, cookieErr := r.Cookie("refresh_token")
		if cookieErr != nil {
			response.Unauthorized(w, "Refresh token is required")
			return
		}
		req.RefreshToken = cookie.Value
	}

	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.Success(w, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
	})
}

func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	url, _ := h.authService.GoogleRedirectURL(r.UserAgent())
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	u, pair, err := h.authService.GoogleCallback(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.Success(w, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
		"user": map[string]interface{}{
			"id":    u.ID,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}
