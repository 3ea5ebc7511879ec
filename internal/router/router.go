package router

import (
	"html/template"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
// templateGlob 为空时跳过模板加载，供仅测试 JSON 接口的场景使用
func SetupRouter(sessionSecret, uploadDir, uploadURLPath, templateGlob string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("devfolio_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"mul": func(a, b int) int {
			return a * b
		},
		"gt": func(a, b int) bool {
			return a > b
		},
		"lt": func(a, b int) bool {
			return a < b
		},
		"eq": func(a, b interface{}) bool {
			return a == b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	})
	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}

	// 静态文件服务，上传目录单独挂载
	// /static 已覆盖其子路径，避免重复注册导致路由冲突
	r.Static("/static", "./web/static")
	if uploadDir != "" && uploadURLPath != "" && !strings.HasPrefix(uploadURLPath, "/static") {
		r.Static(uploadURLPath, uploadDir)
	}

	a := handler.NewAPI(db.DB, uploadDir, uploadURLPath)

	r.GET("/healthz", a.HealthCheck)

	// 公开页面与联系表单，受维护模式开关保护
	public := r.Group("")
	public.Use(a.MaintenanceGate())
	{
		public.GET("/", a.ShowHome)
		public.POST("/contact", a.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", handler.ShowLoginPage)
		admin.POST("/login", handler.Login)
		admin.GET("/logout", handler.Logout)

		// 需要认证的后台页面
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", a.ShowDashboard)
			auth.GET("/projects", a.ShowProjectManagement)
			auth.GET("/services", a.ShowServiceManagement)
			auth.GET("/experience", a.ShowExperienceManagement)
			auth.GET("/education", a.ShowEducationManagement)
			auth.GET("/skills", a.ShowSkillManagement)
			auth.GET("/testimonials", a.ShowTestimonialManagement)
			auth.GET("/clients", a.ShowClientManagement)
			auth.GET("/messages", a.ShowInbox)
			auth.GET("/profile", a.ShowProfileEditor)
			auth.GET("/settings", a.ShowSiteSettings)
		}

		// API 路由：无会话时返回 401 JSON
		api := admin.Group("/api")
		api.Use(handler.APIAuthRequired())
		{
			api.GET("/projects", a.GetProjects)
			api.POST("/projects", a.CreateProject)
			api.PUT("/projects/order", a.ReorderProjects)
			api.PUT("/projects/:id", a.UpdateProject)
			api.DELETE("/projects/:id", a.DeleteProject)

			api.GET("/services", a.GetServices)
			api.POST("/services", a.CreateService)
			api.PUT("/services/order", a.ReorderServices)
			api.PUT("/services/:id", a.UpdateService)
			api.DELETE("/services/:id", a.DeleteService)

			api.GET("/experience", a.GetExperience)
			api.POST("/experience", a.CreateExperience)
			api.PUT("/experience/order", a.ReorderExperience)
			api.PUT("/experience/:id", a.UpdateExperience)
			api.DELETE("/experience/:id", a.DeleteExperience)

			api.GET("/education", a.GetEducation)
			api.POST("/education", a.CreateEducation)
			api.PUT("/education/order", a.ReorderEducation)
			api.PUT("/education/:id", a.UpdateEducation)
			api.DELETE("/education/:id", a.DeleteEducation)

			api.GET("/skills", a.GetSkills)
			api.POST("/skills", a.CreateSkill)
			api.PUT("/skills/order", a.ReorderSkills)
			api.PUT("/skills/:id", a.UpdateSkill)
			api.DELETE("/skills/:id", a.DeleteSkill)

			api.GET("/testimonials", a.GetTestimonials)
			api.POST("/testimonials", a.CreateTestimonial)
			api.PUT("/testimonials/order", a.ReorderTestimonials)
			api.PUT("/testimonials/:id", a.UpdateTestimonial)
			api.DELETE("/testimonials/:id", a.DeleteTestimonial)

			api.GET("/clients", a.GetClients)
			api.POST("/clients", a.CreateClient)
			api.PUT("/clients/order", a.ReorderClients)
			api.PUT("/clients/:id", a.UpdateClient)
			api.DELETE("/clients/:id", a.DeleteClient)

			api.GET("/messages", a.GetMessages)
			api.PUT("/messages/:id/read", a.SetMessageRead)
			api.DELETE("/messages/:id", a.DeleteMessage)

			api.GET("/profile", a.GetProfile)
			api.PUT("/profile", a.UpdateProfile)

			api.GET("/settings", a.GetSiteSettings)
			api.PUT("/settings", a.UpdateSiteSettings)
			api.PUT("/settings/toggle", a.ToggleSetting)

			api.GET("/dashboard/stats", a.GetDashboardStats)
			api.GET("/dashboard/health", a.GetProfileHealth)
			api.GET("/dashboard/activity", a.GetRecentActivity)

			api.PUT("/account/password", a.UpdatePassword)
			api.PUT("/account/username", a.UpdateUsername)

			api.POST("/upload", a.UploadImage)
		}
	}

	return r
}
