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

// OperatorHandlerParams holds dependencies for OperatorHandler, injected by Fx.
type OperatorHandlerParams struct {
	fx.In

	OperatorUC usecase.OperatorUsecase
	Logger     *slog.Logger
}

// OperatorHandler holds dependencies for operator-related handlers
type OperatorHandler struct {
	operatorUC usecase.OperatorUsecase
	logger     *slog.Logger
}

// NewOperatorHandler is the constructor for OperatorHandler
func NewOperatorHandler(params OperatorHandlerParams) *OperatorHandler {
	return &OperatorHandler{
		operatorUC: params.OperatorUC,
		logger:     params.Logger,
	}
}

// OperatorRequest represents the request body for creating or replacing an operator
type OperatorRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// OperatorResponse represents an operator in responses
type OperatorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateOperator handles operator creation
func (h *OperatorHandler) CreateOperator(c echo.Context) error {
	var req OperatorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operator input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.operatorUC.CreateOperator(c.Request().Context(), &entity.Operator{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOperatorResponse(created))
}

// GetOperators handles listing every operator
func (h *OperatorHandler) GetOperators(c echo.Context) error {
	operators, err := h.operatorUC.GetOperators(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*OperatorResponse, 0, len(operators))
	for _, operator := range operators {
		results = append(results, toOperatorResponse(operator))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetOperator handles fetching one operator by id
func (h *OperatorHandler) GetOperator(c echo.Context) error {
	id, err := uuid.Parse(c.Param("operatorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "operatorId is not a valid UUID")
	}

	operator, err := h.operatorUC.GetOperator(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOperatorResponse(operator))
}

// UpdateOperator handles replacing an operator
func (h *OperatorHandler) UpdateOperator(c echo.Context) error {
	id, err := uuid.Parse(c.Param("operatorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "operatorId is not a valid UUID")
	}

	var req OperatorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operator input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.operatorUC.UpdateOperator(c.Request().Context(), id, &entity.Operator{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOperatorResponse(updated))
}

// DeleteOperator handles deleting an operator
func (h *OperatorHandler) DeleteOperator(c echo.Context) error {
	id, err := uuid.Parse(c.Param("operatorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "operatorId is not a valid UUID")
	}

	if err := h.operatorUC.DeleteOperator(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toOperatorResponse(operator *entity.Operator) *OperatorResponse {
	return &OperatorResponse{
		ID:        operator.ID,
		Name:      operator.Name,
		Email:     operator.Email,
		CreatedAt: operator.CreatedAt,
		UpdatedAt: operator.UpdatedAt,
	}
}
