package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RUPESH2911/crf/internal/dto"
	"github.com/RUPESH2911/crf/internal/model"
	"github.com/RUPESH2911/crf/internal/repository"
)

// ── 教师模块业务错误 ──

var (
	ErrFacultyNotFound = errors.New("教师不存在")
)

// FacultyService 教师目录业务接口
type FacultyService interface {
	Create(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	// Delete 仅移除教师本身：课程任课列表与既有反馈中的引用原样保留
	Delete(ctx context.Context, id string) error
}

type facultyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacultyService 创建 FacultyService 实例
func NewFacultyService(repo *repository.Repository, logger *zap.Logger) FacultyService {
	return &facultyService{repo: repo, logger: logger}
}

func (s *facultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error) {
	fac := &model.Faculty{
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
	}

	if err := s.repo.Faculty.Create(ctx, fac); err != nil {
		s.logger.Error("创建教师失败", zap.Error(err))
		return nil, err
	}

	return fac, nil
}

func (s *facultyService) List(ctx context.Context) ([]model.Faculty, error) {
	faculty, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("列出教师失败", zap.Error(err))
		return nil, err
	}
	return faculty, nil
}

func (s *facultyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Faculty.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFacultyNotFound
		}
		s.logger.Error("删除教师失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
