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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderDetailRequest represents one line of an order in requests
type OrderDetailRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// OrderRequest represents the request body for creating or replacing an order
type OrderRequest struct {
	OrderDate  time.Time            `json:"order_date"`
	Status     string               `json:"status" validate:"required"`
	UserID     string               `json:"user_id" validate:"required,uuid"`
	OperatorID string               `json:"operator_id" validate:"required,uuid"`
	Details    []OrderDetailRequest `json:"details" validate:"required,min=1,dive"`
}

// OrderDetailResponse represents one line of an order in responses
type OrderDetailResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// OrderResponse represents an order in responses
type OrderResponse struct {
	ID         uuid.UUID             `json:"id"`
	OrderDate  time.Time             `json:"order_date"`
	Status     string                `json:"status"`
	UserID     uuid.UUID             `json:"user_id"`
	OperatorID uuid.UUID             `json:"operator_id"`
	Details    []OrderDetailResponse `json:"details"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// CreateOrder handles order creation
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.orderUC.CreateOrder(c.Request().Context(), toOrderEntity(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(created))
}

// GetOrders handles listing every order
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.orderUC.GetOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		results = append(results, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetOrder handles fetching one order by id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "orderId is not a valid UUID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// UpdateOrder handles replacing an order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "orderId is not a valid UUID")
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.orderUC.UpdateOrder(c.Request().Context(), id, toOrderEntity(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles deleting an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "orderId is not a valid UUID")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// toOrderEntity maps the request body to a domain entity. The uuid tags on
// the request guarantee the ids parse.
func toOrderEntity(req *OrderRequest) *entity.Order {
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &entity.Order{
		OrderDate:  orderDate,
		Status:     req.Status,
		UserID:     uuid.MustParse(req.UserID),
		OperatorID: uuid.MustParse(req.OperatorID),
	}

	for _, detail := range req.Details {
		order.Details = append(order.Details, &entity.OrderDetail{
			ProductID: uuid.MustParse(detail.ProductID),
			Quantity:  detail.Quantity,
			Price:     detail.Price,
		})
	}

	return order
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:         order.ID,
		OrderDate:  order.OrderDate,
		Status:     order.Status,
		UserID:     order.UserID,
		OperatorID: order.OperatorID,
		Details:    make([]OrderDetailResponse, 0, len(order.Details)),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	for _, detail := range order.Details {
		resp.Details = append(resp.Details, OrderDetailResponse{
			ID:        detail.ID,
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
			Price:     detail.Price,
		})
	}

	return resp
}
