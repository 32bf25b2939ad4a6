package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

type LoginRequest struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type UserListItem struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Register godoc
// @Summary Register new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "credentials"
// @Success 201 {object} TokenPair
// @Failure 400 {object} map[string][]string
// @Failure 500 {object} httputil.ErrorResponse
// @Router /register/ [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	if !decodeBody(w, r, "registering", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &req)
	if err != nil {
		var verr *errorvalues.ValidationError
		switch {
		case errors.As(err, &verr):
			logger.Error("registering error: invalid payload", slog.String("error", verr.Error()))
			httputil.WriteFieldErrors(w, verr.Fields)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteJSONResponse(w, http.StatusBadRequest, map[string]string{"error": "Username already exists."})
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	tokens, err := s.jwtService.GenerateTokens(user)
	if err != nil {
		logger.Error("registering error: generating tokens error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, tokens)
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

// Login godoc
// @Summary Obtain access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} TokenPair
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httputil.ErrorResponse
// @Router /login/ [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, "login", &req) {
		return
	}
	verr := errorvalues.NewValidationError()
	if req.Name == "" {
		verr.Add("username", "This field is required.")
	}
	if req.Password == "" {
		verr.Add("password", "This field is required.")
	}
	if !verr.Empty() {
		logger.Error("login error: missing credentials")
		httputil.WriteFieldErrors(w, verr.Fields)
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no active account found with the given credentials", nil)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		return
	}
	tokens, err := s.jwtService.GenerateTokens(user)
	if err != nil {
		logger.Error("login error: generating tokens error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tokens)
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

// RefreshToken godoc
// @Summary Exchange refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Router /login/refresh/ [post]
func (s *Server) RefreshToken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RefreshRequest
	if !decodeBody(w, r, "refresh", &req) {
		return
	}
	if req.Refresh == "" {
		logger.Error("refresh error: missing token")
		httputil.WriteFieldErrors(w, map[string][]string{"refresh": {"This field is required."}})
		return
	}
	claims, err := s.jwtService.ParseToken(req.Refresh)
	if err != nil || claims.TokenType != TokenTypeRefresh {
		logger.Error("refresh error: invalid token")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedMessage, nil)
		return
	}
	user, err := s.lookupUser(r.Context(), claims)
	if err != nil {
		logger.Error("refresh error: token owner", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedMessage, nil)
		return
	}
	access, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		logger.Error("refresh error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RefreshResponse{Access: access})
	logger.Info("access token refreshed", slog.String("uid", user.ID.String()))
}

// DeleteAccount godoc
// @Summary Delete caller's account with all records
// @Tags auth
// @Accept json
// @Param request body DeleteAccountRequest true "password confirmation"
// @Success 204
// @Failure 401 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /account/ [delete]
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, "account deletion", &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	err := s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials), errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, unauthorizedMessage, nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("account deleted")
}

// ListUsers godoc
// @Summary List registered users
// @Tags auth
// @Produce json
// @Success 200 {array} UserListItem
// @Security BearerAuth
// @Router /users/ [get]
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := requestContext(r)
	defer cancel()
	users, err := s.userService.List(ctx)
	if err != nil {
		logger.Error("listing users error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting users list", nil)
		return
	}
	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItem{ID: u.ID.String(), Username: u.Name})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, items)
}
