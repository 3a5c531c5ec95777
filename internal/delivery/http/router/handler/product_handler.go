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

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductPhotoRequest represents an attached photo in product requests
type ProductPhotoRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption"`
}

// ProductVideoRequest represents an attached video in product requests
type ProductVideoRequest struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
}

// ProductRequest represents the request body for creating or replacing a product
type ProductRequest struct {
	Name        string                `json:"name" validate:"required"`
	Description string                `json:"description"`
	Price       float64               `json:"price" validate:"gte=0"`
	CategoryID  string                `json:"category_id"`
	Photos      []ProductPhotoRequest `json:"photos" validate:"dive"`
	Videos      []ProductVideoRequest `json:"videos" validate:"dive"`
}

// ProductPhotoResponse represents a photo in product responses
type ProductPhotoResponse struct {
	ID      uuid.UUID `json:"id"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
}

// ProductVideoResponse represents a video in product responses
type ProductVideoResponse struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Price       float64                `json:"price"`
	CategoryID  string                 `json:"category_id,omitempty"`
	Variants    []*VariantResponse     `json:"variants,omitempty"`
	Photos      []ProductPhotoResponse `json:"photos,omitempty"`
	Videos      []ProductVideoResponse `json:"videos,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := toProductEntity(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_REFERENCE", "category_id is not a valid UUID")
	}

	created, err := h.productUC.CreateProduct(c.Request().Context(), product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(created))
}

// GetProducts handles listing every product
func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.productUC.GetProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		results = append(results, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetProduct handles fetching one product by id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "productId is not a valid UUID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// UpdateProduct handles replacing a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "productId is not a valid UUID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := toProductEntity(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_REFERENCE", "category_id is not a valid UUID")
	}

	updated, err := h.productUC.UpdateProduct(c.Request().Context(), id, product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles deleting a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "productId is not a valid UUID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// toProductEntity maps the request body to a domain entity. An empty
// category_id stays uuid.Nil, marking the product uncategorized.
func toProductEntity(req *ProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
	}

	for _, photo := range req.Photos {
		product.Photos = append(product.Photos, &entity.Photo{
			URL:     photo.URL,
			Caption: photo.Caption,
		})
	}

	for _, video := range req.Videos {
		product.Videos = append(product.Videos, &entity.Video{
			URL:         video.URL,
			Description: video.Description,
		})
	}

	return product, nil
}

func toProductResponse(product *entity.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.CategoryID != uuid.Nil {
		resp.CategoryID = product.CategoryID.String()
	}

	for _, variant := range product.Variants {
		resp.Variants = append(resp.Variants, toVariantResponse(variant))
	}

	for _, photo := range product.Photos {
		resp.Photos = append(resp.Photos, ProductPhotoResponse{
			ID:      photo.ID,
			URL:     photo.URL,
			Caption: photo.Caption,
		})
	}

	for _, video := range product.Videos {
		resp.Videos = append(resp.Videos, ProductVideoResponse{
			ID:          video.ID,
			URL:         video.URL,
			Description: video.Description,
		})
	}

	return resp
}
