package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentBase 以 ObjectID 十六进制串为主键的关系型存储基类
type DocumentBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(24)" json:"id"`
	Revision  int64     `gorm:"not null;default:1" json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func GenerateObjectID() primitive.ObjectID {
	return primitive.NewObjectID()
}
