package controller

import (
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// ListSubjects godoc
// @Summary 学科列表
// @Description 可按学年/学期过滤，附带题目数与资料数
// @Tags 学科模块
// @Produce json
// @Security ApiKeyAuth
// @Param year query string false "学年 FY/SY/TY"
// @Param semester query int false "学期 1-6"
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	year := ctx.Query("year")
	semester := util.ParseIntDefault(ctx.Query("semester"), 0)

	subjects, err := c.SubjectService.List(year, semester)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": subjects})
}

// GetSubject godoc
// @Summary 学科详情
// @Tags 学科模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学科ID"
// @Success 200 {object} util.Response{data=model.Subject}
// @Router /api/subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	subject, err := c.SubjectService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, subject)
}

// CreateSubject godoc
// @Summary 新增学科
// @Tags 学科模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubjectReq true "学科信息"
// @Success 201 {object} util.Response
// @Router /api/admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubjectReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, subject)
}

// UpdateSubject godoc
// @Summary 更新学科
// @Tags 学科模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学科ID"
// @Param body body service.SubjectReq true "学科信息"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var req service.SubjectReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, subject)
}

// DeleteSubject godoc
// @Summary 删除学科
// @Description 尚有题目、资料或成绩引用的学科不允许删除
// @Tags 学科模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学科ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "学科仍被引用"
// @Router /api/admin/subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	err := c.SubjectService.Delete(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubjectNotFound):
			util.Error(ctx, http.StatusNotFound, err.Error())
		case errors.Is(err, util.ErrSubjectReferenced):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
