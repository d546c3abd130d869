package controller

import (
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// CreateQuestion godoc
// @Summary 新增题目
// @Tags 题库模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionReq true "题目信息"
// @Success 201 {object} util.Response
// @Router /api/teacher/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Create(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, q)
}

// ListQuestions godoc
// @Summary 题目列表
// @Description 可按学科、难度过滤；mine=1 时只看自己创建的
// @Tags 题库模块
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int false "学科ID"
// @Param difficulty query string false "难度 easy/medium/hard"
// @Param mine query string false "只看自己的"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/teacher/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	subjectID := util.MustParseUint(ctx.Query("subjectId"))
	difficulty := model.Difficulty(ctx.Query("difficulty"))
	page := util.ParseIntDefault(ctx.DefaultQuery("page", "1"), 1)
	limit := util.ParseIntDefault(ctx.DefaultQuery("limit", "20"), 20)

	var creatorID uint
	if ctx.Query("mine") == "1" {
		creatorID = claims.UserID
	}

	questions, total, err := c.QuestionService.List(subjectID, creatorID, difficulty, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// GetQuestion godoc
// @Summary 题目详情
// @Description 返回题目及当前用户的编辑/删除权限
// @Tags 题库模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	q, err := c.QuestionService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"question":   q,
		"permission": service.PermissionFor(claims, q),
	})
}

// UpdateQuestion godoc
// @Summary 更新题目
// @Tags 题库模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param body body service.QuestionReq true "题目信息"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Update(claims, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 题库模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.QuestionService.Delete(claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// ImportQuestions godoc
// @Summary CSV 批量导入题目
// @Description 非法行跳过并计数，导入继续
// @Tags 题库模块
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "CSV 文件"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Router /api/teacher/questions/import [post]
func (c *QuestionController) ImportQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.QuestionService.ImportCSV(file, claims.UserID)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, result)
}

// ExportQuestions godoc
// @Summary 导出学科题目为 CSV
// @Tags 题库模块
// @Produce text/csv
// @Security ApiKeyAuth
// @Param subjectId query int true "学科ID"
// @Success 200 {string} string "CSV 内容"
// @Router /api/teacher/questions/export [get]
func (c *QuestionController) ExportQuestions(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Query("subjectId"))
	if subjectID == 0 {
		util.BadRequest(ctx, "subjectId is required")
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="questions.csv"`)

	if err := c.QuestionService.ExportCSV(ctx.Writer, subjectID); err != nil {
		util.LogInternalError(ctx, err)
	}
}
