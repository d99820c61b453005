package model

// Course 课程记录
// Faculty 保存任课教师的 ID 列表（多对多）
type Course struct {
	ID         string   `json:"id"`
	Code       string   `json:"code"`
	Title      string   `json:"title"`
	Department string   `json:"department"`
	Semester   int      `json:"semester"`
	Faculty    []string `json:"faculty"`
}

// Faculty 教师记录
type Faculty struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}
