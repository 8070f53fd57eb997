package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bilifeed/internal/dao"
	"bilifeed/internal/model"
)

const profileKey = "profile"

func SetProfileToContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileId, err := strconv.Atoi(c.Param("profile_id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid profile id",
			})
			return
		}
		profile, err := model.GetProfileById(profileId)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": "profile not found",
			})
			return
		}
		c.Set(profileKey, profile)
		c.Next()
	}
}

// @Summary 获取预设列表
// @Description 获取搜索预设列表
// @Tags 预设
// @Produce json
// @Param start query int true "分页开始位置"
// @Param limit query int true "分页大小"
// @Success 200 {object} dao.ListProfilesResponse
// @Router /api/v1/profiles [get]
func (s *Server) handleListProfiles(c *gin.Context) {
	var req dao.ListProfilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	profiles, total, err := model.ListProfiles(req.Start, req.Limit)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	resp := dao.ListProfilesResponse{
		Total: total,
		Items: make([]dao.ProfileSpec, len(profiles)),
	}
	for i := range profiles {
		resp.Items[i] = *dao.FromProfileModel(&profiles[i])
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary 创建预设
// @Description 创建搜索预设
// @Tags 预设
// @Accept json
// @Produce json
// @Param request body dao.CreateProfileRequest true "请求参数"
// @Success 200 {object} dao.CreateProfileResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles [post]
func (s *Server) handleCreateProfile(c *gin.Context) {
	var req dao.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	existing, err := model.GetProfileByName(req.Name)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("profile %s already exists", req.Name))
		return
	}

	profile := req.ToModel()
	if err := model.AddProfile(profile); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dao.CreateProfileResponse{
		Id: profile.Id,
	})
}

// @Summary 获取预设
// @Description 获取指定的搜索预设
// @Tags 预设
// @Produce json
// @Param profile_id path int true "预设ID"
// @Success 200 {object} dao.ProfileSpec
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{profile_id} [get]
func (s *Server) handleGetProfile(c *gin.Context) {
	profile := c.MustGet(profileKey).(*model.Profile)
	c.JSON(http.StatusOK, dao.FromProfileModel(profile))
}

// @Summary 更新预设
// @Description 更新指定的搜索预设
// @Tags 预设
// @Accept json
// @Produce json
// @Param profile_id path int true "预设ID"
// @Param request body dao.UpdateProfileRequest true "请求参数"
// @Success 200 {object} dao.ProfileSpec
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile/{profile_id} [put]
func (s *Server) handleUpdateProfile(c *gin.Context) {
	profile := c.MustGet(profileKey).(*model.Profile)

	var req dao.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	req.UpdateModel(profile)
	if err := model.UpdateProfile(profile); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dao.FromProfileModel(profile))
}

// @Summary 删除预设
// @Description 删除指定的搜索预设
// @Tags 预设
// @Produce json
// @Param profile_id path int true "预设ID"
// @Success 200
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{profile_id} [delete]
func (s *Server) handleDeleteProfile(c *gin.Context) {
	profile := c.MustGet(profileKey).(*model.Profile)
	if err := model.DeleteProfile(profile); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// @Summary 运行预设
// @Description 按预设执行一次聚合搜索
// @Tags 预设
// @Produce json
// @Param profile_id path int true "预设ID"
// @Success 200 {object} dao.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile/{profile_id}/run [post]
func (s *Server) handleRunProfile(c *gin.Context) {
	profile := c.MustGet(profileKey).(*model.Profile)

	req := dao.FromProfileModel(profile).ToSearchRequest()
	records, err := s.agg.Aggregate(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dao.ToSearchResponse(records))
}
