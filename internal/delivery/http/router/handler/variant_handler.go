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

// VariantHandlerParams holds dependencies for VariantHandler, injected by Fx.
type VariantHandlerParams struct {
	fx.In

	VariantUC usecase.VariantUsecase
	Logger    *slog.Logger
}

// VariantHandler holds dependencies for variant-related handlers
type VariantHandler struct {
	variantUC usecase.VariantUsecase
	logger    *slog.Logger
}

// NewVariantHandler is the constructor for VariantHandler
func NewVariantHandler(params VariantHandlerParams) *VariantHandler {
	return &VariantHandler{
		variantUC: params.VariantUC,
		logger:    params.Logger,
	}
}

// VariantRequest represents the request body for creating or replacing a variant
type VariantRequest struct {
	Color string `json:"color" validate:"required"`
	Size  string `json:"size" validate:"required"`
	Stock int    `json:"stock" validate:"gte=0"`
}

// VariantResponse represents a variant in responses
type VariantResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateVariant handles variant creation under a product
func (h *VariantHandler) CreateVariant(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "productId is not a valid UUID")
	}

	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.variantUC.CreateVariant(c.Request().Context(), productID, &entity.Variant{
		Color: req.Color,
		Size:  req.Size,
		Stock: req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toVariantResponse(created))
}

// GetVariants handles listing every variant of a product
func (h *VariantHandler) GetVariants(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "productId is not a valid UUID")
	}

	variants, err := h.variantUC.GetVariants(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*VariantResponse, 0, len(variants))
	for _, variant := range variants {
		results = append(results, toVariantResponse(variant))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetVariant handles fetching one variant of a product
func (h *VariantHandler) GetVariant(c echo.Context) error {
	productID, variantID, err := variantPathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "path id is not a valid UUID")
	}

	variant, err := h.variantUC.GetVariant(c.Request().Context(), productID, variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVariantResponse(variant))
}

// UpdateVariant handles replacing a variant
func (h *VariantHandler) UpdateVariant(c echo.Context) error {
	productID, variantID, err := variantPathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "path id is not a valid UUID")
	}

	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.variantUC.UpdateVariant(c.Request().Context(), productID, variantID, &entity.Variant{
		Color: req.Color,
		Size:  req.Size,
		Stock: req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVariantResponse(updated))
}

// DeleteVariant handles deleting a variant
func (h *VariantHandler) DeleteVariant(c echo.Context) error {
	productID, variantID, err := variantPathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "path id is not a valid UUID")
	}

	if err := h.variantUC.DeleteVariant(c.Request().Context(), productID, variantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func variantPathIDs(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return productID, variantID, nil
}

func toVariantResponse(variant *entity.Variant) *VariantResponse {
	return &VariantResponse{
		ID:        variant.ID,
		ProductID: variant.ProductID,
		Color:     variant.Color,
		Size:      variant.Size,
		Stock:     variant.Stock,
		CreatedAt: variant.CreatedAt,
		UpdatedAt: variant.UpdatedAt,
	}
}
