package orders

import (
	"context"
	"errors"

	"github.com/qastore/pkg/apperr"
	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/dtos"
	"github.com/qastore/pkg/utils"
	"go.uber.org/zap"
)

// Service exposes the order history read-side. Orders are written by the
// checkout flow outside this codebase.
type Service interface {
	ListByUser(ctx context.Context, userID uint, page int) ([]dtos.OrderResponse, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func NewService(r Repository, logger *zap.Logger) Service {
	return &service{
		repository: r,
		logger:     logger,
	}
}

// ListByUser returns the user's orders newest first. page <= 0 returns the
// whole history.
func (s *service) ListByUser(ctx context.Context, userID uint, page int) ([]dtos.OrderResponse, error) {
	var err error
	orders := []dtos.OrderResponse{}

	if page > 0 {
		paged, _, pagedErr := s.repository.FindByUserPaged(ctx, userID, page)
		if pagedErr != nil {
			if errors.Is(pagedErr, utils.ErrPageOutOfRange) {
				return nil, apperr.Validation(constant.PAGE_NUMBER_OUT_OF_RANGE)
			}
			s.logger.Error("failed to list orders", zap.Error(pagedErr))
			return nil, apperr.Storage(constant.SOMETHING_WENT_WRONG)
		}
		for i := range paged {
			orders = append(orders, dtos.NewOrderResponse(&paged[i]))
		}
		return orders, nil
	}

	all, err := s.repository.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		return nil, apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}
	for i := range all {
		orders = append(orders, dtos.NewOrderResponse(&all[i]))
	}
	return orders, nil
}
