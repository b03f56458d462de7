package notification

import (
	"context"

	"github.com/baraholka/marketplace/constant"
	"github.com/baraholka/marketplace/model"
	notificationrepo "github.com/baraholka/marketplace/repository/notification"
	"github.com/baraholka/marketplace/utils/errors"
	"github.com/baraholka/marketplace/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	List(ctx context.Context, userID string) (*model.NotificationListResponse, error)
	Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.CreateNotificationResponse, error)
	MarkRead(ctx context.Context, req *model.MarkNotificationReadRequest) (*model.MarkNotificationReadResponse, error)
}

type notificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &notificationAppImpl{notificationRepo: notificationRepo}
}

func (s *notificationAppImpl) List(ctx context.Context, userID string) (*model.NotificationListResponse, error) {
	items, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[List] err notificationRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	unread := 0
	for _, it := range items {
		if !it.IsRead {
			unread++
		}
	}

	return &model.NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationAppImpl) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.CreateNotificationResponse, error) {
	id, err := s.notificationRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[Create] err notificationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	return &model.CreateNotificationResponse{
		Success:        true,
		NotificationID: id,
	}, nil
}

// MarkRead flips is_read unconditionally; unknown ids are not an error.
func (s *notificationAppImpl) MarkRead(ctx context.Context, req *model.MarkNotificationReadRequest) (*model.MarkNotificationReadResponse, error) {
	if err := s.notificationRepo.MarkRead(ctx, req.NotificationID); err != nil {
		logger.Error("[MarkRead] err notificationRepo.MarkRead", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	return &model.MarkNotificationReadResponse{Success: true}, nil
}
