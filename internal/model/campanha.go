package model

import "time"

// Campanha 营销活动条目
// JSON 字段名与前端约定保持一致（注意 "Responsável" 带重音符号）
type Campanha struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Data        string `gorm:"size:16;comment:展示日期(dd/mm/aaaa)" json:"Data"`
	Tema        string `gorm:"size:255;comment:活动主题" json:"Tema"`
	Formato     string `gorm:"size:64;comment:内容形式(Post/Reels/Banner等)" json:"Formato"`
	Responsavel string `gorm:"size:128;comment:负责人" json:"Responsável"`
	Status      string `gorm:"size:32;index;default:Planejado;comment:状态" json:"Status"`
}

func (Campanha) TableName() string {
	return "campanhas"
}

// ==================== 状态常量 ====================

const (
	CampanhaStatusPlanejado  = "Planejado"
	CampanhaStatusEmProducao = "Em produção"
	CampanhaStatusAprovado   = "Aprovado"
	CampanhaStatusPublicado  = "Publicado"
)

// CampanhaStatusValido 校验状态值是否合法
func CampanhaStatusValido(s string) bool {
	switch s {
	case CampanhaStatusPlanejado, CampanhaStatusEmProducao, CampanhaStatusAprovado, CampanhaStatusPublicado:
		return true
	}
	return false
}
