package impl

import (
	"context"
	"log/slog"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	clothingRepo repository.ClothingRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ClothingRepo repository.ClothingRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		clothingRepo: params.ClothingRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireClothing resolves the parent clothing item or reports it missing.
func (srv *reviewService) requireClothing(ctx context.Context, clothingRepo repository.ClothingRepository, clothingID uuid.UUID) error {
	_, err := clothingRepo.FindByID(ctx, clothingID)
	if errors.Is(err, repository.ErrClothingNotFound) {
		return domainerrors.ErrClothingNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find clothing by ID")
	}

	return nil
}

// CreateReview persists a review under the given clothing item.
func (srv *reviewService) CreateReview(ctx context.Context, clothingID uuid.UUID, review *entity.Review) (*entity.Review, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireClothing(ctx, repoFactory.ClothingRepo(), clothingID); err != nil {
			return err
		}

		review.ClothingID = clothingID

		return repoFactory.ReviewRepo().Create(ctx, review)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create review", slog.Any("clothingID", clothingID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID), slog.Any("clothingID", clothingID))

	return review, nil
}

// GetReviews returns every review belonging to the clothing item.
func (srv *reviewService) GetReviews(ctx context.Context, clothingID uuid.UUID) ([]*entity.Review, error) {
	if err := srv.requireClothing(ctx, srv.clothingRepo, clothingID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindByClothing(ctx, clothingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by clothing")
	}

	return reviews, nil
}

// GetReview returns a single review under the clothing item. The stored
// parent linkage is deliberately not cross-checked on fetch; only the parent's
// existence is verified.
func (srv *reviewService) GetReview(ctx context.Context, clothingID, reviewID uuid.UUID) (*entity.Review, error) {
	if err := srv.requireClothing(ctx, srv.clothingRepo, clothingID); err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return review, nil
}

// UpdateReview overwrites the review, pinning the path id and parent.
func (srv *reviewService) UpdateReview(ctx context.Context, clothingID, reviewID uuid.UUID, review *entity.Review) (*entity.Review, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireClothing(ctx, repoFactory.ClothingRepo(), clothingID); err != nil {
			return err
		}

		reviewRepo := repoFactory.ReviewRepo()

		stored, err := reviewRepo.FindByID(ctx, reviewID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find review by ID")
		}

		review.ID = stored.ID
		review.ClothingID = clothingID
		review.CreatedAt = stored.CreatedAt

		return reviewRepo.Save(ctx, review)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, err
	}

	return review, nil
}

// DeleteReview removes the review after verifying it belongs to the
// path-supplied clothing item. Unlike GetReview, the stored parent linkage is
// enforced here so a review can never be deleted through a foreign parent.
func (srv *reviewService) DeleteReview(ctx context.Context, clothingID, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireClothing(ctx, repoFactory.ClothingRepo(), clothingID); err != nil {
			return err
		}

		reviewRepo := repoFactory.ReviewRepo()

		stored, err := reviewRepo.FindByID(ctx, reviewID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find review by ID")
		}

		if stored.ClothingID != clothingID {
			return domainerrors.ErrReviewNotInClothing
		}

		return reviewRepo.Delete(ctx, reviewID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Review deleted", slog.Any("reviewID", reviewID), slog.Any("clothingID", clothingID))

	return nil
}
