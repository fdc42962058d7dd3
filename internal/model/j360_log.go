package model

import "gorm.io/datatypes"

// J360EventLog 图像生成遥测事件日志
// 每次 imagem 代理执行都会落一条，payload 本身不存，只存短哈希用于关联
type J360EventLog struct {
	BaseModel

	// 事件信息
	EventType string `gorm:"size:32;index;comment:事件类型(image.generate)"`
	Agente    string `gorm:"size:32;comment:代理名称"`
	Modo      string `gorm:"size:16;index;comment:生成模式(enhance/nft/frontend)"`
	Persona   string `gorm:"size:32;comment:目标画像"`

	// 合规结果
	RiskScore        float64        `gorm:"type:decimal(4,2);comment:风险评分(0-1)"`
	Flags            datatypes.JSON `gorm:"comment:风险标记列表"`
	NecessitaRevisao bool           `gorm:"index;comment:是否需要人工复核"`

	// 关联
	PayloadHash string `gorm:"size:12;index;comment:请求payload短哈希"`
}

func (J360EventLog) TableName() string {
	return "j360_event_logs"
}

// ==================== 事件类型常量 ====================

const (
	J360EventImageGenerate = "image.generate"
)
