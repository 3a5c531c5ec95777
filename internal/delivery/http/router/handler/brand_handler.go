package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BrandHandlerParams holds dependencies for BrandHandler, injected by Fx.
type BrandHandlerParams struct {
	fx.In

	BrandUC usecase.BrandUsecase
	Logger  *slog.Logger
}

// BrandHandler holds dependencies for brand-related handlers
type BrandHandler struct {
	brandUC usecase.BrandUsecase
	logger  *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler
func NewBrandHandler(params BrandHandlerParams) *BrandHandler {
	return &BrandHandler{
		brandUC: params.BrandUC,
		logger:  params.Logger,
	}
}

// BrandRequest represents the request body for creating or replacing a brand
type BrandRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateBrand handles brand creation
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.brandUC.CreateBrand(c.Request().Context(), &entity.Brand{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBrandResponse(created))
}

// GetBrands handles listing every brand
func (h *BrandHandler) GetBrands(c echo.Context) error {
	brands, err := h.brandUC.GetBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*BrandResponse, 0, len(brands))
	for _, brand := range brands {
		results = append(results, toBrandResponse(brand))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetBrand handles fetching one brand by id
func (h *BrandHandler) GetBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("brandId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "brandId is not a valid UUID")
	}

	brand, err := h.brandUC.GetBrand(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBrandResponse(brand))
}

// UpdateBrand handles replacing a brand
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("brandId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "brandId is not a valid UUID")
	}

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.brandUC.UpdateBrand(c.Request().Context(), id, &entity.Brand{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBrandResponse(updated))
}

// DeleteBrand handles deleting a brand
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("brandId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "brandId is not a valid UUID")
	}

	if err := h.brandUC.DeleteBrand(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toBrandResponse(brand *entity.Brand) *BrandResponse {
	return &BrandResponse{
		ID:        brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
		UpdatedAt: brand.UpdatedAt,
	}
}
