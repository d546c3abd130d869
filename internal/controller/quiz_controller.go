package controller

import (
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type StartQuizRequest struct {
	SubjectID uint `json:"subjectId" binding:"required"`
}

// StartQuiz godoc
// @Summary 开始测验
// @Description 为当前学生从学科题库随机抽题。学科无题时返回空题单提示而非错误页。
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StartQuizRequest true "学科"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "学科不存在"
// @Router /api/quiz/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.QuizService.StartAttempt(req.SubjectID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubjectNotFound):
			util.Error(ctx, http.StatusNotFound, err.Error())
		case errors.Is(err, util.ErrEmptyQuestionBank):
			// 空题库不是错误：前端展示"该学科暂无题目"
			util.Success(ctx, gin.H{
				"available": false,
				"message":   err.Error(),
				"questions": []service.QuestionView{},
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"available": true,
		"subject":   session.Subject,
		"questions": session.Views(),
	})
}

type AnswerInput struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

type SubmitQuizRequest struct {
	SubjectID   uint          `json:"subjectId" binding:"required"`
	QuestionIDs []uint        `json:"questionIds" binding:"required"`
	Answers     []AnswerInput `json:"answers"`
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 按提交的题目集和答案评分并落库。未作答的题计入分母按答错处理。
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "题目集与答案"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "学科不存在"
// @Failure 500 {object} util.Response "成绩保存失败，请重试"
// @Router /api/quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.QuizService.BuildSession(req.SubjectID, claims.UserID, req.QuestionIDs)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubjectNotFound):
			util.Error(ctx, http.StatusNotFound, err.Error())
		case errors.Is(err, util.ErrEmptyQuestionBank):
			util.BadRequest(ctx, "submitted question set is empty")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	for _, a := range req.Answers {
		session.RecordAnswer(a.QuestionID, a.Answer)
	}

	grade, result, err := c.QuizService.Submit(session)
	if err != nil {
		// 只有成绩落库失败会中止提交，提示用户重试
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"resultId": result.ID,
		"takenAt":  result.TakenAt,
		"grade":    grade,
	})
}
