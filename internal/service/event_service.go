package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RUPESH2911/crf/internal/model"
	"github.com/RUPESH2911/crf/internal/repository"
)

// EventService 反馈活动业务接口
// 活动为全局单例开关，开放时才接受学生提交
type EventService interface {
	Get(ctx context.Context) (*model.FeedbackEvent, error)
	Toggle(ctx context.Context) (*model.FeedbackEvent, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Get(ctx context.Context) (*model.FeedbackEvent, error) {
	return s.repo.Event.Get(ctx)
}

func (s *eventService) Toggle(ctx context.Context) (*model.FeedbackEvent, error) {
	event, err := s.repo.Event.Toggle(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("反馈活动状态已切换", zap.Bool("is_active", event.IsActive))
	return event, nil
}
