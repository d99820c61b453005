package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RUPESH2911/crf/internal/service"
	"github.com/RUPESH2911/crf/pkg/response"
)

// EventHandler 反馈活动模块 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// GetEvent 查询反馈活动状态
// GET /api/admin/event
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, event)
}

// ToggleEvent 切换反馈活动开放状态
// POST /api/admin/event/toggle
func (h *EventHandler) ToggleEvent(c *gin.Context) {
	event, err := h.eventSvc.Toggle(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, event)
}
