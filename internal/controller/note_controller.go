package controller

import (
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// UploadNote godoc
// @Summary 上传课程资料
// @Tags 资料模块
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId formData int true "学科ID"
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param file formData file true "文件"
// @Success 201 {object} util.Response
// @Router /api/teacher/notes [post]
func (c *NoteController) UploadNote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	subjectID := util.MustParseUint(ctx.PostForm("subjectId"))
	title := ctx.PostForm("title")
	if subjectID == 0 || title == "" {
		util.BadRequest(ctx, "subjectId and title are required")
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

	note, err := c.NoteService.Upload(ctx.Request.Context(), claims.UserID, subjectID,
		title, ctx.PostForm("description"), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, note)
}

// ListNotes godoc
// @Summary 资料列表/搜索
// @Tags 资料模块
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int false "学科ID"
// @Param q query string false "标题/描述搜索"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Query("subjectId"))
	search := ctx.Query("q")
	page := util.ParseIntDefault(ctx.DefaultQuery("page", "1"), 1)
	limit := util.ParseIntDefault(ctx.DefaultQuery("limit", "20"), 20)

	notes, total, err := c.NoteService.List(subjectID, search, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: notes, Total: total, Page: page, Limit: limit})
}

// MyUploads godoc
// @Summary 我上传的资料
// @Tags 资料模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/teacher/notes/mine [get]
func (c *NoteController) MyUploads(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	notes, err := c.NoteService.ListByUploader(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": notes})
}

// DownloadNote godoc
// @Summary 下载资料
// @Description 返回文件流并累加下载计数
// @Tags 资料模块
// @Produce application/octet-stream
// @Security ApiKeyAuth
// @Param id path int true "资料ID"
// @Success 200 {string} string "文件内容"
// @Router /api/notes/{id}/download [get]
func (c *NoteController) DownloadNote(ctx *gin.Context) {
	note, reader, err := c.NoteService.OpenForDownload(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	defer reader.Close()

	ctx.Header("Content-Disposition", `attachment; filename="`+note.FileName+`"`)
	ctx.Header("Content-Type", util.MimeOctetStream)
	ctx.DataFromReader(http.StatusOK, note.FileSize, util.MimeOctetStream, reader, nil)
}

// DeleteNote godoc
// @Summary 删除资料
// @Description 上传者本人或管理员可删除
// @Tags 资料模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资料ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.NoteService.Delete(ctx.Request.Context(), claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoteNotFound):
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
