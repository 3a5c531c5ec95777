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

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler holds dependencies for category-related handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CategoryRequest represents the request body for creating or replacing a category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryResponse represents a category in responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCategory handles category creation
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.categoryUC.CreateCategory(c.Request().Context(), &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(created))
}

// GetCategories handles listing every category
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryUC.GetCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		results = append(results, toCategoryResponse(category))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetCategory handles fetching one category by id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "categoryId is not a valid UUID")
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory handles replacing a category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "categoryId is not a valid UUID")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(updated))
}

// DeleteCategory handles deleting a category
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "categoryId is not a valid UUID")
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(category *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
