package server

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bilifeed/internal/dao"
	"bilifeed/internal/timerange"
)

// @Summary 聚合搜索
// @Description 按多个关键词聚合搜索视频，过滤、去重后返回
// @Tags 搜索
// @Accept json
// @Produce json
// @Param request body dao.SearchRequest true "请求参数"
// @Success 200 {object} dao.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/search [post]
func (s *Server) handleSearch(c *gin.Context) {
	var req dao.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	records, err := s.agg.Aggregate(c.Request.Context(), req.ToSearchRequest())
	if err != nil {
		if goerrors.Is(err, timerange.ErrInvalidTimeMode) || goerrors.Is(err, timerange.ErrMissingCustomRange) {
			s.writeError(c, http.StatusBadRequest, err)
			return
		}
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dao.ToSearchResponse(records))
}
