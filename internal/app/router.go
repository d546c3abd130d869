package app

import (
	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/middleware"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 学生/通用 授权接口
		a.registerStudentRoutes(authGroup, c)

		// 教师相关接口
		a.registerTeacherRoutes(authGroup, c)

		// 管理员相关接口
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	// 学科浏览
	rg.GET("/subjects", c.subject.ListSubjects)
	rg.GET("/subjects/:id", c.subject.GetSubject)

	// 资料浏览与下载
	rg.GET("/notes", c.note.ListNotes)
	rg.GET("/notes/:id/download", c.note.DownloadNote)

	// 测验
	rg.POST("/quiz/start", c.quiz.StartQuiz)
	rg.POST("/quiz/submit", c.quiz.SubmitQuiz)

	// 成绩
	rg.GET("/performance/summary", c.performance.GetSummary)
	rg.GET("/performance/history", c.performance.GetHistory)
	rg.GET("/performance/subjects", c.performance.GetSubjectBreakdown)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		// 题库管理
		teacher.POST("/questions", c.question.CreateQuestion)
		teacher.GET("/questions", c.question.ListQuestions)
		teacher.GET("/questions/:id", c.question.GetQuestion)
		teacher.PUT("/questions/:id", c.question.UpdateQuestion)
		teacher.DELETE("/questions/:id", c.question.DeleteQuestion)
		teacher.POST("/questions/import", c.question.ImportQuestions)
		teacher.GET("/questions/export", c.question.ExportQuestions)

		// 资料管理
		teacher.POST("/notes", c.note.UploadNote)
		teacher.GET("/notes/mine", c.note.MyUploads)
		teacher.DELETE("/notes/:id", c.note.DeleteNote)

		// 班级成绩
		teacher.GET("/performance/cohort", c.performance.GetCohortSummary)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		// 学科管理
		admin.POST("/subjects", c.subject.CreateSubject)
		admin.PUT("/subjects/:id", c.subject.UpdateSubject)
		admin.DELETE("/subjects/:id", c.subject.DeleteSubject)

		// 用户管理
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/role", c.user.ChangeRole)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		// 教师审批
		admin.GET("/teachers/pending", c.user.PendingTeachers)
		admin.POST("/teachers/:id/approve", c.user.ApproveTeacher)
	}
}
