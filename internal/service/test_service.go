package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"quiz_backend/internal/config"
	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/logger"
	"quiz_backend/pkg/tracing"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type TestService struct {
	Repo           repository.TestRepository
	MaxSaveRetries int
	Now            func() time.Time
}

func NewTestService(repo repository.TestRepository, cfg *config.Config) *TestService {
	return &TestService{
		Repo:           repo,
		MaxSaveRetries: cfg.Traversal.MaxSaveRetries,
		Now:            repository.Now,
	}
}

type QuestionPayload struct {
	QuestionText string  `json:"questionText" yaml:"questionText"`
	ImageURL     string  `json:"imageUrl" yaml:"imageUrl"`
	MaxTime      float64 `json:"maxTime" yaml:"maxTime"`
	PasteAllowed *bool   `json:"pasteAllowed" yaml:"pasteAllowed"`
}

// toQuestion 每道新题都带一个空的作答记录
func (p QuestionPayload) toQuestion() model.Question {
	return model.Question{
		QuestionText: strings.TrimSpace(p.QuestionText),
		ImageURL:     p.ImageURL,
		MaxTime:      p.MaxTime,
		PasteAllowed: p.PasteAllowed,
		Answer:       model.NewAnswer(),
	}
}

type CreateTestRequest struct {
	Title        string   `json:"title" yaml:"title"`
	Instructions []string `json:"instructions" yaml:"instructions"`
}

type CreateFullTestRequest struct {
	Title        string            `json:"title" yaml:"title"`
	Instructions []string          `json:"instructions" yaml:"instructions"`
	Questions    []QuestionPayload `json:"questions" yaml:"questions"`
}

type SubmitAnswerRequest struct {
	Answer AnswerText `json:"answer" swaggertype:"string"`
}

// AnswerText 数字、布尔值形式的答案按原样转成字符串保存，对象和数组视为非法
type AnswerText string

func (a *AnswerText) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = AnswerText(text)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case json.Number:
		*a = AnswerText(val.String())
	case bool:
		*a = AnswerText(strconv.FormatBool(val))
	default:
		return util.ErrInvalidBody
	}
	return nil
}

type TestMetadata struct {
	Title        string   `json:"title"`
	Instructions []string `json:"instructions"`
}

type QuestionCount struct {
	Total int `json:"total"`
}

// QuestionView 答题时下发的题目投影，不包含作答记录
type QuestionView struct {
	Index        int     `json:"index"`
	QuestionText string  `json:"questionText"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	MaxTime      float64 `json:"maxTime"`
}

func newQuestionView(index int, q *model.Question) *QuestionView {
	return &QuestionView{
		Index:        index,
		QuestionText: q.QuestionText,
		ImageURL:     q.ImageURL,
		MaxTime:      q.MaxTime,
	}
}

// GetTest 解析 ID 并加载整个测试。调用方必须先检查错误再使用返回值
func (s *TestService) GetTest(ctx context.Context, id string) (*model.Test, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.ErrInvalidIdentifier
	}

	t, err := s.Repo.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, util.ErrTestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load test %s: %w", id, err)
	}
	return t, nil
}

func (s *TestService) GetMetadata(ctx context.Context, id string) (*TestMetadata, error) {
	t, err := s.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TestMetadata{Title: t.Title, Instructions: t.Instructions}, nil
}

func (s *TestService) CountQuestions(ctx context.Context, id string) (*QuestionCount, error) {
	t, err := s.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}
	return &QuestionCount{Total: len(t.Questions)}, nil
}

func (s *TestService) GetResults(ctx context.Context, id string) (*model.Test, error) {
	return s.GetTest(ctx, id)
}

// update 执行一次读-改-写。保存时发生版本冲突会重新读取并重放 mutate，
// 超过重试次数或保存失败时返回 ErrPersistence
func (s *TestService) update(ctx context.Context, id string, mutate func(t *model.Test) error) (*model.Test, error) {
	for attempt := 0; ; attempt++ {
		t, err := s.GetTest(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(t); err != nil {
			return nil, err
		}

		err = s.Repo.Save(ctx, t)
		if err == nil {
			return t, nil
		}
		if errors.Is(err, repository.ErrRevisionConflict) && attempt < s.MaxSaveRetries {
			logger.Log.Debug("Test revision conflict, retrying",
				zap.String("testId", id),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		return nil, fmt.Errorf("%w: %w", util.ErrPersistence, err)
	}
}

// NextQuestion 取第一道尚未开始的题目并记录开始时间
func (s *TestService) NextQuestion(ctx context.Context, id string) (view *QuestionView, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "TestService.NextQuestion")
	defer func() { endSpan(span, err) }()

	var index int
	t, err := s.update(ctx, id, func(t *model.Test) error {
		index = t.NextUnstarted()
		if index == 0 {
			return util.ErrNoMoreQuestions
		}
		now := s.Now()
		t.Question(index).Answer.StartTime = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("question.index", index))
	return newQuestionView(index, t.Question(index)), nil
}

// QuestionByIndex 按序号取题，每次访问都会覆盖开始时间
func (s *TestService) QuestionByIndex(ctx context.Context, id string, index int) (view *QuestionView, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "TestService.QuestionByIndex",
		trace.WithAttributes(attribute.Int("question.index", index)))
	defer func() { endSpan(span, err) }()

	t, err := s.update(ctx, id, func(t *model.Test) error {
		q := t.Question(index)
		if q == nil {
			return util.ErrIndexOutOfRange
		}
		now := s.Now()
		q.Answer.StartTime = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newQuestionView(index, t.Question(index)), nil
}

// SubmitAnswer 记录答案与结束时间，重复提交会覆盖之前的答案
func (s *TestService) SubmitAnswer(ctx context.Context, id string, index int, text string) (question *model.Question, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "TestService.SubmitAnswer",
		trace.WithAttributes(attribute.Int("question.index", index)))
	defer func() { endSpan(span, err) }()

	t, err := s.update(ctx, id, func(t *model.Test) error {
		q := t.Question(index)
		if q == nil {
			return util.ErrIndexOutOfRange
		}
		now := s.Now()
		q.Answer.Text = text
		q.Answer.EndTime = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	q := *t.Question(index)
	return &q, nil
}

func (s *TestService) CreateTest(ctx context.Context, req CreateTestRequest) (*model.Test, error) {
	t := &model.Test{
		Title:        req.Title,
		Instructions: req.Instructions,
		Questions:    []model.Question{},
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		logger.Log.Error("Failed to create test", zap.String("title", req.Title), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", util.ErrPersistence, err)
	}
	return t, nil
}

func (s *TestService) CreateFullTest(ctx context.Context, req CreateFullTestRequest) (*model.Test, error) {
	questions := make([]model.Question, len(req.Questions))
	for i, p := range req.Questions {
		questions[i] = p.toQuestion()
	}

	t := &model.Test{
		Title:        req.Title,
		Instructions: req.Instructions,
		Questions:    questions,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		logger.Log.Error("Failed to create full test",
			zap.String("title", req.Title),
			zap.Int("questions", len(questions)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", util.ErrPersistence, err)
	}
	return t, nil
}

// AppendQuestion 在测试末尾追加一道题，已有题目的顺序不变
func (s *TestService) AppendQuestion(ctx context.Context, id string, payload QuestionPayload) error {
	_, err := s.update(ctx, id, func(t *model.Test) error {
		t.Questions = append(t.Questions, payload.toQuestion())
		return nil
	})
	if err != nil && errors.Is(err, util.ErrPersistence) {
		logger.Log.Error("Failed to append question", zap.String("testId", id), zap.Error(err))
	}
	return err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
