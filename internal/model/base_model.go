package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 内部表公共字段（自增主键 + 审计时间戳 + 软删除）
// 只有遥测等内部实体嵌入；对外的 wire 格式由各自的 DTO 决定
type BaseModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"criado_em"`
	UpdatedAt time.Time      `json:"atualizado_em"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
