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

// ClothingHandlerParams holds dependencies for ClothingHandler, injected by Fx.
type ClothingHandlerParams struct {
	fx.In

	ClothingUC usecase.ClothingUsecase
	Logger     *slog.Logger
}

// ClothingHandler holds dependencies for clothing-related handlers
type ClothingHandler struct {
	clothingUC usecase.ClothingUsecase
	logger     *slog.Logger
}

// NewClothingHandler is the constructor for ClothingHandler
func NewClothingHandler(params ClothingHandlerParams) *ClothingHandler {
	return &ClothingHandler{
		clothingUC: params.ClothingUC,
		logger:     params.Logger,
	}
}

// ClothingRequest represents the request body for creating or replacing a clothing item
type ClothingRequest struct {
	Name        string    `json:"name" validate:"required"`
	SKU         string    `json:"sku"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"release_date"`
	BrandID     string    `json:"brand_id"`
}

// BrandResponse represents a brand in clothing responses
type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DesignerResponse represents a designer in clothing responses
type DesignerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ClothingResponse represents a clothing item in responses
type ClothingResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	SKU         string             `json:"sku"`
	Image       string             `json:"image,omitempty"`
	Description string             `json:"description,omitempty"`
	ReleaseDate time.Time          `json:"release_date"`
	Brand       *BrandResponse     `json:"brand,omitempty"`
	Designers   []DesignerResponse `json:"designers,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateClothing handles clothing creation
func (h *ClothingHandler) CreateClothing(c echo.Context) error {
	var req ClothingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clothing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	clothing, err := toClothingEntity(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_BRAND_REFERENCE", "brand_id is not a valid UUID")
	}

	created, err := h.clothingUC.CreateClothing(c.Request().Context(), clothing)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toClothingResponse(created))
}

// GetClothingItems handles listing every clothing item
func (h *ClothingHandler) GetClothingItems(c echo.Context) error {
	items, err := h.clothingUC.GetClothingItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*ClothingResponse, 0, len(items))
	for _, item := range items {
		results = append(results, toClothingResponse(item))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetClothing handles fetching one clothing item by id
func (h *ClothingHandler) GetClothing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("clothingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "clothingId is not a valid UUID")
	}

	item, err := h.clothingUC.GetClothing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toClothingResponse(item))
}

// UpdateClothing handles replacing a clothing item
func (h *ClothingHandler) UpdateClothing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("clothingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "clothingId is not a valid UUID")
	}

	var req ClothingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clothing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	clothing, err := toClothingEntity(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_BRAND_REFERENCE", "brand_id is not a valid UUID")
	}

	updated, err := h.clothingUC.UpdateClothing(c.Request().Context(), id, clothing)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toClothingResponse(updated))
}

// DeleteClothing handles deleting a clothing item
func (h *ClothingHandler) DeleteClothing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("clothingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "clothingId is not a valid UUID")
	}

	if err := h.clothingUC.DeleteClothing(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// toClothingEntity maps the request body to a domain entity. A missing
// brand_id maps to a nil brand so the service can reject it uniformly.
func toClothingEntity(req *ClothingRequest) (*entity.Clothing, error) {
	clothing := &entity.Clothing{
		Name:        req.Name,
		SKU:         req.SKU,
		Image:       req.Image,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
	}

	if req.BrandID != "" {
		brandID, err := uuid.Parse(req.BrandID)
		if err != nil {
			return nil, err
		}
		clothing.Brand = &entity.Brand{ID: brandID}
	}

	return clothing, nil
}

func toClothingResponse(clothing *entity.Clothing) *ClothingResponse {
	resp := &ClothingResponse{
		ID:          clothing.ID,
		Name:        clothing.Name,
		SKU:         clothing.SKU,
		Image:       clothing.Image,
		Description: clothing.Description,
		ReleaseDate: clothing.ReleaseDate,
		CreatedAt:   clothing.CreatedAt,
		UpdatedAt:   clothing.UpdatedAt,
	}

	if clothing.Brand != nil {
		resp.Brand = &BrandResponse{
			ID:        clothing.Brand.ID,
			Name:      clothing.Brand.Name,
			CreatedAt: clothing.Brand.CreatedAt,
			UpdatedAt: clothing.Brand.UpdatedAt,
		}
	}

	for _, designer := range clothing.Designers {
		resp.Designers = append(resp.Designers, DesignerResponse{
			ID:   designer.ID,
			Name: designer.Name,
		})
	}

	return resp
}
