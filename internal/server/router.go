package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bilifeed/docs"
)

func (s *Server) SetUpRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger())
	router.Use(gin.Recovery())
	pprof.Register(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	apiV1 := router.Group("/api/v1")
	s.SetUpApiV1Router(apiV1)

	return router
}

func (s *Server) SetUpApiV1Router(apiV1 *gin.RouterGroup) {
	apiV1.Use(TrySetUserToContext(s.conf.JwtSecret))

	apiV1.POST("/login", s.handleLogin)
	apiV1.POST("/logout", s.handleLogout)

	v1Authed := apiV1.Group("")
	v1Authed.Use(NeedAuth(false))

	v1Authed.POST("/search", s.handleSearch)
	v1Authed.GET("/defaults", s.handleGetDefaults)
	v1Authed.PUT("/defaults", s.handleSaveDefaults)

	v1Authed.GET("/profiles", s.handleListProfiles)
	v1Authed.POST("/profiles", s.handleCreateProfile)
	profileRoutes := v1Authed.Group("/profile/:profile_id")
	profileRoutes.Use(SetProfileToContext())
	profileRoutes.GET("", s.handleGetProfile)
	profileRoutes.PUT("", s.handleUpdateProfile)
	profileRoutes.DELETE("", s.handleDeleteProfile)
	profileRoutes.POST("/run", s.handleRunProfile)

	v1Authed.GET("/push/records", s.handleListPushRecords)

	v1Admin := v1Authed.Group("/admin")
	v1Admin.Use(NeedAuth(true))
	v1Admin.POST("/push", s.handleTriggerPush)
	v1Admin.GET("/users", s.handleListUsers)
	v1Admin.POST("/users", s.handleCreateUser)
	v1Admin.DELETE("/user/:user_id", s.handleDeleteUser)
}
