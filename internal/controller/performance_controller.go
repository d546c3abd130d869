package controller

import (
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PerformanceController struct {
	PerformanceService *service.PerformanceService
}

func NewPerformanceController(performanceService *service.PerformanceService) *PerformanceController {
	return &PerformanceController{PerformanceService: performanceService}
}

// GetSummary godoc
// @Summary 学生成绩总览
// @Description 当前学生的测验次数、平均百分比和已考学科数；无记录时全为零
// @Tags 成绩模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudentSummary}
// @Router /api/performance/summary [get]
func (c *PerformanceController) GetSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.PerformanceService.StudentSummary(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// GetHistory godoc
// @Summary 学生成绩历史
// @Description 最近成绩，按考试时间倒序
// @Tags 成绩模块
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(20)
// @Success 200 {object} util.Response
// @Router /api/performance/history [get]
func (c *PerformanceController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := util.ParseIntDefault(ctx.DefaultQuery("limit", "20"), 20)

	history, err := c.PerformanceService.StudentHistory(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": history})
}

// GetSubjectBreakdown godoc
// @Summary 学生分学科成绩
// @Description 每个考过的学科一行，按平均百分比降序
// @Tags 成绩模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/performance/subjects [get]
func (c *PerformanceController) GetSubjectBreakdown(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.PerformanceService.SubjectBreakdown(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": rows})
}

// GetCohortSummary godoc
// @Summary 班级成绩分析
// @Description 每个学生一行（零记录学生也在内），可按学期/学年过滤，按平均百分比降序
// @Tags 成绩模块
// @Produce json
// @Security ApiKeyAuth
// @Param semester query int false "学期 1-6"
// @Param year query string false "学年 FY/SY/TY"
// @Success 200 {object} util.Response
// @Router /api/teacher/performance/cohort [get]
func (c *PerformanceController) GetCohortSummary(ctx *gin.Context) {
	semester := util.ParseIntDefault(ctx.Query("semester"), 0)
	year := ctx.Query("year")

	rows, err := c.PerformanceService.CohortSummary(semester, year)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": rows})
}
