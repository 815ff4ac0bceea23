package services

import (
	"context"
	"errors"
	"strings"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/authz"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"

	"gorm.io/gorm"
)

type FeedbackService struct {
	Deps
}

func NewFeedbackService(d Deps) *FeedbackService {
	return &FeedbackService{Deps: d.withDefaults("feedback")}
}

// SubmitFeedback records the actor's rating of one of their delivered
// orders. Each order takes at most one feedback entry.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, actor *models.User, orderID uint, req dto.FeedbackRequest) (*models.Feedback, error) {
	const op = "submit_feedback"
	if err := authz.Authorize(authz.OpSubmitFeedback, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, s.fail(ctx, op, apperr.Business(apperr.CodeInvalidRating, "Rating must be between 1 and 5"))
	}

	var fb *models.Feedback
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := repository.NewOrders(tx).FindOwned(ctx, orderID, actor.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(apperr.CodeFeedbackOrderLookup, "Order not found for this user")
		}
		if err != nil {
			return err
		}
		if order.Status != models.StatusDelivered {
			return apperr.Business(apperr.CodeOrderNotDelivered, "Feedback is only accepted for delivered orders")
		}

		repo := repository.NewFeedback(tx)
		exists, err := repo.ExistsForOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict(apperr.CodeFeedbackExists, "Feedback already submitted for this order")
		}
		fb = &models.Feedback{
			UserID:    actor.ID,
			OrderID:   order.ID,
			Rating:    req.Rating,
			Comments:  strings.TrimSpace(req.Comments),
			CreatedAt: s.now(),
		}
		if err := repo.Create(ctx, fb); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperr.Conflict(apperr.CodeFeedbackExists, "Feedback already submitted for this order")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("feedback submitted", "order_id", orderID, "rating", fb.Rating)
	return fb, nil
}
