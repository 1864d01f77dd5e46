package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// TestDocument 测试在 MySQL 中的存储形式，题目整体以 JSON 列保存
type TestDocument struct {
	DocumentBase
	Title        string     `gorm:"size:255" json:"title"`
	Instructions []string   `gorm:"type:json;serializer:json" json:"instructions"`
	Questions    []Question `gorm:"type:json;serializer:json" json:"questions"`
}

func (TestDocument) TableName() string {
	return "tests"
}

func NewTestDocument(t *Test) *TestDocument {
	c := t.Clone()
	return &TestDocument{
		DocumentBase: DocumentBase{
			ID:        c.ID.Hex(),
			Revision:  c.Revision,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		Title:        c.Title,
		Instructions: c.Instructions,
		Questions:    c.Questions,
	}
}

func (d *TestDocument) ToTest() (*Test, error) {
	id, err := primitive.ObjectIDFromHex(d.ID)
	if err != nil {
		return nil, err
	}
	return &Test{
		ID:           id,
		Title:        d.Title,
		Instructions: d.Instructions,
		Questions:    d.Questions,
		Revision:     d.Revision,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}
