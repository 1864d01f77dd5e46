package controller

import (
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Service *service.TestService
}

func NewTestController(svc *service.TestService) *TestController {
	return &TestController{Service: svc}
}

// @Summary 获取测试基本信息
// @Tags 测试
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} service.TestMetadata
// @Failure 404
// @Router /tests/{id} [get]
func (c *TestController) GetMetadata(ctx *gin.Context) {
	meta, err := c.Service.GetMetadata(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, meta)
}

// @Summary 获取下一道未开始的题目
// @Description 返回第一道尚未开始的题目并记录开始时间，全部开始后返回 404
// @Tags 答题
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} service.QuestionView
// @Failure 400
// @Failure 404
// @Router /tests/{id}/current [get]
func (c *TestController) GetCurrentQuestion(ctx *gin.Context) {
	view, err := c.Service.NextQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 按序号获取题目
// @Description 序号从 1 开始，每次访问都会重新记录开始时间
// @Tags 答题
// @Produce json
// @Param id path string true "测试ID"
// @Param index path int true "题目序号"
// @Success 200 {object} service.QuestionView
// @Failure 400
// @Failure 404
// @Router /tests/{id}/questions/{index} [get]
func (c *TestController) GetQuestion(ctx *gin.Context) {
	index := util.ParseQuestionIndex(ctx.Param("index"))

	view, err := c.Service.QuestionByIndex(ctx.Request.Context(), ctx.Param("id"), index)
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 获取题目总数
// @Tags 测试
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} service.QuestionCount
// @Failure 404
// @Router /tests/{id}/count [get]
func (c *TestController) GetCount(ctx *gin.Context) {
	count, err := c.Service.CountQuestions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, count)
}

// @Summary 提交答案
// @Tags 答题
// @Accept json
// @Produce json
// @Param id path string true "测试ID"
// @Param index path int true "题目序号"
// @Param body body service.SubmitAnswerRequest true "答案"
// @Success 200 {object} model.Question
// @Failure 400
// @Failure 404
// @Router /tests/{id}/questions/{index}/answer [post]
func (c *TestController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx)
		return
	}

	index := util.ParseQuestionIndex(ctx.Param("index"))
	q, err := c.Service.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), index, string(req.Answer))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary 创建空测试
// @Tags 出题
// @Accept json
// @Produce json
// @Param body body service.CreateTestRequest true "测试信息"
// @Success 200 {object} model.Test
// @Failure 400
// @Router /tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req service.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx)
		return
	}

	t, err := c.Service.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, t)
}

// @Summary 创建带全部题目的测试
// @Tags 出题
// @Accept json
// @Produce json
// @Param body body service.CreateFullTestRequest true "测试及题目"
// @Success 200 {object} model.Test
// @Failure 400
// @Router /tests/full [post]
func (c *TestController) CreateFullTest(ctx *gin.Context) {
	var req service.CreateFullTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx)
		return
	}

	t, err := c.Service.CreateFullTest(ctx.Request.Context(), req)
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, t)
}

// @Summary 追加题目
// @Description 成功时不返回响应体
// @Tags 出题
// @Accept json
// @Param id path string true "测试ID"
// @Param body body service.QuestionPayload true "题目"
// @Success 200
// @Failure 400
// @Failure 404
// @Router /tests/{id}/questions [post]
func (c *TestController) AppendQuestion(ctx *gin.Context) {
	var req service.QuestionPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx)
		return
	}

	if err := c.Service.AppendQuestion(ctx.Request.Context(), ctx.Param("id"), req); err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.OK(ctx)
}

// @Summary 获取测试结果
// @Description 返回完整测试，包括每道题的作答记录
// @Tags 测试
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} model.Test
// @Failure 404
// @Router /tests/{id}/results [get]
func (c *TestController) GetResults(ctx *gin.Context) {
	t, err := c.Service.GetResults(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, t)
}
