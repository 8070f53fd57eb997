package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bilifeed/internal/dao"
	"bilifeed/internal/model"
)

// @Summary 手动触发推送
// @Description 立即执行一次聚合搜索并推送新视频
// @Tags 推送
// @Produce json
// @Success 200 {object} dao.PushRunResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/push [post]
func (s *Server) handleTriggerPush(c *gin.Context) {
	if s.pusher == nil {
		s.writeError(c, http.StatusInternalServerError, fmt.Errorf("push is not configured"))
		return
	}

	pushed, err := s.pusher.Run(c.Request.Context())
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dao.PushRunResponse{Pushed: pushed})
}

// @Summary 获取推送记录
// @Description 获取历史推送记录，按时间倒序
// @Tags 推送
// @Produce json
// @Param start query int true "分页开始位置"
// @Param limit query int true "分页大小"
// @Success 200 {object} dao.ListPushRecordsResponse
// @Router /api/v1/push/records [get]
func (s *Server) handleListPushRecords(c *gin.Context) {
	var req dao.ListPushRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	records, total, err := model.ListPushRecords(req.Start, req.Limit)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	resp := dao.ListPushRecordsResponse{
		Total: total,
		Items: make([]dao.PushRecordSpec, len(records)),
	}
	for i := range records {
		resp.Items[i] = dao.FromPushRecordModel(&records[i])
	}
	c.JSON(http.StatusOK, resp)
}
