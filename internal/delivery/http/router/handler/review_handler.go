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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest represents the request body for creating or replacing a review
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
	UserID  string `json:"user_id"`
}

// ReviewResponse represents a review in responses
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ClothingID uuid.UUID `json:"clothing_id"`
	UserID     string    `json:"user_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateReview handles review creation under a clothing item
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	clothingID, err := uuid.Parse(c.Param("clothingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "clothingId is not a valid UUID")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := toReviewEntity(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_REFERENCE", "user_id is not a valid UUID")
	}

	created, err := h.reviewUC.CreateReview(c.Request().Context(), clothingID, review)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(created))
}

// GetReviews handles listing every review of a clothing item
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	clothingID, err := uuid.Parse(c.Param("clothingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "clothingId is not a valid UUID")
	}

	reviews, err := h.reviewUC.GetReviews(c.Request().Context(), clothingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, results)
}

// GetReview handles fetching one review of a clothing item
func (h *ReviewHandler) GetReview(c echo.Context) error {
	clothingID, reviewID, err := reviewPathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "path id is not a valid UUID")
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), clothingID, reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// UpdateReview handles replacing a review
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	clothingID, reviewID, err := reviewPathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "path id is not a valid UUID")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := toReviewEntity(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_REFERENCE", "user_id is not a valid UUID")
	}

	updated, err := h.reviewUC.UpdateReview(c.Request().Context(), clothingID, reviewID, review)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(updated))
}

// DeleteReview handles deleting a review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	clothingID, reviewID, err := reviewPathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "path id is not a valid UUID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), clothingID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func reviewPathIDs(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	clothingID, err := uuid.Parse(c.Param("clothingId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return clothingID, reviewID, nil
}

// toReviewEntity maps the request body to a domain entity. An empty user_id
// stays uuid.Nil, marking the review anonymous.
func toReviewEntity(req *ReviewRequest) (*entity.Review, error) {
	review := &entity.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, err
		}
		review.UserID = userID
	}

	return review, nil
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:         review.ID,
		ClothingID: review.ClothingID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	if review.UserID != uuid.Nil {
		resp.UserID = review.UserID.String()
	}

	return resp
}
