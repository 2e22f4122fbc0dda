package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

// TokenCookieName is the HTTP-only cookie carrying the session token.
const TokenCookieName = "token"

type usersService interface {
	Register(ctx context.Context, reg Registration) (*Profile, error)
	ResetPassword(ctx context.Context, reset PasswordReset) error
	Profile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, identityUsername string, userID int, update ProfileUpdate) (*Profile, error)
}

type authGate interface {
	Login(ctx context.Context, username, password string) (string, auth.Identity, error)
	ResolveToken(ctx context.Context, token string) (auth.Identity, error)
	Logout(ctx context.Context, token string) error
	TokenTTL() time.Duration
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VerifyTokenResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
	UserID   int    `json:"user_id"`
}

type Handler struct {
	users          usersService
	auth           authGate
	metricsManager *metrics.Manager
	secureCookie   bool
}

func NewHandler(
	users usersService,
	auth authGate,
	metricsManager *metrics.Manager,
	secureCookie bool,
) *Handler {
	return &Handler{
		users:          users,
		auth:           auth,
		metricsManager: metricsManager,
		secureCookie:   secureCookie,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/forgot-password", handler.HandleForgotPassword).Methods("POST", "OPTIONS").Name("forgot-password")
	r.HandleFunc("/verify-token", handler.HandleVerifyToken).Methods("GET", "OPTIONS").Name("verify-token")
	r.HandleFunc("/updateuser", handler.HandleUpdateUser).Methods("PUT", "OPTIONS").Name("update-user")
	r.HandleFunc("/userinfo", handler.HandleUserInfo).Methods("GET", "OPTIONS").Name("user-info")
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "login", err)
		return
	}

	token, identity, err := handler.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		handler.countLogin("failed")
		api.WriteError(w, "login", err)
		return
	}
	handler.countLogin("ok")

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(handler.auth.TokenTTL().Seconds()),
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteNoneMode,
	})

	log.Debugf("user %s [%d] logged in", identity.Username, identity.UserID)
	pkg.WriteStatusResponse(w, true, "Login successful", http.StatusOK)
}

// HandleLogout revokes the cookie token when it is still valid and always clears the cookie.
func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		if err := handler.auth.Logout(ctx, cookie.Value); err != nil && !errors.Is(err, auth.ErrInvalidToken) {
			api.WriteError(w, "logout", err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteNoneMode,
	})

	pkg.WriteStatusResponse(w, true, "Logged out", http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var reg Registration
	if err := api.DecodeJSON(r, &reg); err != nil {
		api.WriteError(w, "register", err)
		return
	}

	profile, err := handler.users.Register(ctx, reg)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			pkg.WriteStatusResponse(w, false, "Username already taken", http.StatusConflict)
			return
		}
		api.WriteError(w, "register", err)
		return
	}

	pkg.WriteStatusResponse(w, true, fmt.Sprintf("User %s registered successfully", profile.Username), http.StatusOK)
}

func (handler *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.forgot_password")
	defer span.End()

	var reset PasswordReset
	if err := api.DecodeJSON(r, &reset); err != nil {
		api.WriteError(w, "forgot password", err)
		return
	}

	if err := handler.users.ResetPassword(ctx, reset); err != nil {
		api.WriteError(w, "forgot password", err)
		return
	}

	pkg.WriteStatusResponse(w, true, "Password updated", http.StatusOK)
}

func (handler *Handler) HandleVerifyToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.verify_token")
	defer span.End()

	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		pkg.WriteStatusResponse(w, false, "No token cookie found", http.StatusUnauthorized)
		return
	}

	identity, err := handler.auth.ResolveToken(ctx, cookie.Value)
	if err != nil {
		api.WriteError(w, "verify token", err)
		return
	}

	pkg.WriteJSON(w, VerifyTokenResponse{
		Success:  true,
		Message:  "Token is valid",
		Username: identity.Username,
		UserID:   identity.UserID,
	}, http.StatusOK)
}

func (handler *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var update ProfileUpdate
	if err := api.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, "update user", err)
		return
	}

	profile, err := handler.users.UpdateProfile(ctx, identity.Username, identity.UserID, update)
	if err != nil {
		api.WriteError(w, "update user", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.info")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	profile, err := handler.users.Profile(ctx, identity.UserID)
	if err != nil {
		api.WriteError(w, "user info", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) countLogin(result string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}
