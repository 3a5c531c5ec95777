package handler

import (
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UserRequest represents the request body for creating or replacing a user
type UserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CartResponse represents a user's cart in responses
type CartResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse represents a user in responses
type UserResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Cart      *CartResponse `json:"cart,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CreateUser handles user creation. A fresh cart is attached so the account
// is ready for checkout flows immediately.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Cart:  &entity.Cart{},
	}

	created, err := h.userUC.CreateUser(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(created))
}

// GetUsers handles listing every user
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userUC.GetUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		results = append(results, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetUser handles fetching one user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "userId is not a valid UUID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles replacing a user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "userId is not a valid UUID")
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.userUC.UpdateUser(c.Request().Context(), id, &entity.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(updated))
}

// DeleteUser handles deleting a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "userId is not a valid UUID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(user *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Cart != nil {
		resp.Cart = &CartResponse{
			ID:        user.Cart.ID,
			CreatedAt: user.Cart.CreatedAt,
		}
	}

	return resp
}
