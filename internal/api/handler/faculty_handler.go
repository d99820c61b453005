package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/RUPESH2911/crf/internal/dto"
	"github.com/RUPESH2911/crf/internal/service"
	"github.com/RUPESH2911/crf/pkg/response"
)

// FacultyHandler 教师模块 HTTP 处理器
type FacultyHandler struct {
	facultySvc service.FacultyService
}

// NewFacultyHandler 创建 FacultyHandler
func NewFacultyHandler(facultySvc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc}
}

// ListFaculty 教师列表
// GET /api/admin/faculty
func (h *FacultyHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.facultySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": faculty})
}

// CreateFaculty 创建教师
// POST /api/admin/faculty
func (h *FacultyHandler) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	fac, err := h.facultySvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, fac)
}

// DeleteFaculty 删除教师
// DELETE /api/admin/faculty/:facultyId
func (h *FacultyHandler) DeleteFaculty(c *gin.Context) {
	id := c.Param("facultyId")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	if err := h.facultySvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.NotFound(c, 14001, "教师不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
