package service

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/model"
	"Marketplace/internal/pkg/util"
	"Marketplace/internal/repository"
	"context"
)

type InterestService interface {
	CreateInterest(ctx context.Context, userID uint64, req *dto.CreateInterestDTO) error
	ListReceivedInterests(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.InterestDTO, error)
}

type interestServiceImpl struct {
	interestRepo repository.InterestRepo
	producerRepo repository.ProducerRepo
}

func NewInterestService(interestRepo repository.InterestRepo, producerRepo repository.ProducerRepo) InterestService {
	return &interestServiceImpl{
		interestRepo: interestRepo,
		producerRepo: producerRepo,
	}
}

func (s *interestServiceImpl) CreateInterest(ctx context.Context, userID uint64, req *dto.CreateInterestDTO) error {
	if err := util.ValidateDTO(req); err != nil {
		return ErrParamInvalid
	}

	producer, err := s.producerRepo.GetProducerByID(ctx, req.ProducerID)
	if err != nil {
		return err
	}
	if producer == nil {
		return ErrProducerNotFound
	}
	if producer.UserID == userID {
		return ErrInterestSelf
	}

	exists, err := s.interestRepo.CheckInterestExists(ctx, userID, producer.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrInterestExist
	}

	err = s.interestRepo.CreateInterest(ctx, &model.Interest{
		UserID:     userID,
		ProducerID: producer.ID,
		Message:    req.Message,
	})
	if isDuplicateError(err) {
		return ErrInterestExist
	}
	return err
}

// ListReceivedInterests 当前用户名下商家收到的意向
func (s *interestServiceImpl) ListReceivedInterests(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.InterestDTO, error) {
	producer, err := s.producerRepo.GetProducerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if producer == nil {
		return nil, ErrProducerNotFound
	}

	limit, offset := util.PageToLimitOffset(page, pageSize)
	interests, err := s.interestRepo.GetInterestsByProducer(ctx, producer.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.InterestDTO, 0, len(interests))
	for _, interest := range interests {
		res = append(res, &dto.InterestDTO{
			ID:        interest.ID,
			UserID:    interest.UserID,
			UserName:  interest.User.Name,
			Message:   interest.Message,
			CreatedAt: interest.CreatedAt,
		})
	}
	return res, nil
}
