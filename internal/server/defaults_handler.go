package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bilifeed/internal/store"
)

// @Summary 获取搜索默认值
// @Description 获取保存的搜索表单默认值
// @Tags 搜索
// @Produce json
// @Success 200 {object} store.Defaults
// @Router /api/v1/defaults [get]
func (s *Server) handleGetDefaults(c *gin.Context) {
	d, err := s.store.GetDefaults()
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	if d == nil {
		d = &store.Defaults{}
	}
	c.JSON(http.StatusOK, d)
}

// @Summary 保存搜索默认值
// @Description 保存搜索表单默认值，下次打开时回填
// @Tags 搜索
// @Accept json
// @Produce json
// @Param request body store.Defaults true "请求参数"
// @Success 200
// @Router /api/v1/defaults [put]
func (s *Server) handleSaveDefaults(c *gin.Context) {
	var d store.Defaults
	if err := c.ShouldBindJSON(&d); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.SaveDefaults(&d); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
