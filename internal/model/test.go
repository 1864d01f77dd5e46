package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answer 题目作答记录，StartTime/EndTime 为空表示尚未开始/尚未提交
type Answer struct {
	Text      string     `bson:"text" json:"text"`
	StartTime *time.Time `bson:"startTime" json:"startTime"`
	EndTime   *time.Time `bson:"endTime" json:"endTime"`
}

func NewAnswer() Answer {
	return Answer{Text: ""}
}

// swagger:model Question
type Question struct {
	QuestionText string  `bson:"questionText" json:"questionText"`
	ImageURL     string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	MaxTime      float64 `bson:"maxTime" json:"maxTime"` // Seconds, 0 = unlimited
	PasteAllowed *bool   `bson:"pasteAllowed,omitempty" json:"pasteAllowed,omitempty"`
	Answer       Answer  `bson:"answer" json:"answer"`
}

func (q Question) Started() bool {
	return q.Answer.StartTime != nil
}

// swagger:model Test
type Test struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Questions    []Question         `bson:"questions" json:"questions"`
	Revision     int64              `bson:"revision" json:"revision"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Question 按 1 起始的序号取题，越界返回 nil
func (t *Test) Question(index int) *Question {
	pos := index - 1
	if pos < 0 || pos >= len(t.Questions) {
		return nil
	}
	return &t.Questions[pos]
}

// NextUnstarted 返回第一道尚未开始的题目序号（1 起始），全部开始后返回 0
func (t *Test) NextUnstarted() int {
	for i := range t.Questions {
		if !t.Questions[i].Started() {
			return i + 1
		}
	}
	return 0
}

func (t *Test) Clone() *Test {
	c := *t
	if t.Instructions != nil {
		c.Instructions = append([]string(nil), t.Instructions...)
	}
	if t.Questions != nil {
		c.Questions = make([]Question, len(t.Questions))
		for i, q := range t.Questions {
			c.Questions[i] = q.clone()
		}
	}
	return &c
}

func (q Question) clone() Question {
	c := q
	if q.PasteAllowed != nil {
		v := *q.PasteAllowed
		c.PasteAllowed = &v
	}
	c.Answer.StartTime = cloneTime(q.Answer.StartTime)
	c.Answer.EndTime = cloneTime(q.Answer.EndTime)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
