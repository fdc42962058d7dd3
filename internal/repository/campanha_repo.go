package repository

import (
	"context"

	"gorm.io/gorm"

	"nftdiarias_dev_v1_202608/internal/model"
)

// ==================== 仓储接口 ====================

// CampanhaRepository 营销活动仓储接口
type CampanhaRepository interface {
	Create(ctx context.Context, item *model.Campanha) error
	GetByID(ctx context.Context, id string) (*model.Campanha, error)
	List(ctx context.Context) ([]model.Campanha, error)
	UpdateStatus(ctx context.Context, id string, status string) (int64, error)

	// 统计查询
	GetStats(ctx context.Context) (*CampanhaStats, error)
}

// ==================== 统计结构 ====================

// CampanhaStats 活动状态统计
type CampanhaStats struct {
	Total      int64 `json:"total"`
	Planejado  int64 `json:"planejado"`
	EmProducao int64 `json:"emProducao"`
	Aprovado   int64 `json:"aprovado"`
	Publicado  int64 `json:"publicado"`
}

// ==================== 仓储实现 ====================

type campanhaRepo struct {
	db *gorm.DB
}

// NewCampanhaRepository 创建营销活动仓储
func NewCampanhaRepository(db *gorm.DB) CampanhaRepository {
	return &campanhaRepo{db: db}
}

func (r *campanhaRepo) Create(ctx context.Context, item *model.Campanha) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *campanhaRepo) GetByID(ctx context.Context, id string) (*model.Campanha, error) {
	var item model.Campanha
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *campanhaRepo) List(ctx context.Context) ([]model.Campanha, error) {
	var items []model.Campanha
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

// UpdateStatus 仅更新状态字段，返回受影响行数
func (r *campanhaRepo) UpdateStatus(ctx context.Context, id string, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Campanha{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *campanhaRepo) GetStats(ctx context.Context) (*CampanhaStats, error) {
	var stats CampanhaStats

	err := r.db.WithContext(ctx).Model(&model.Campanha{}).
		Select(`
			COUNT(*) as total,
			SUM(CASE WHEN status = 'Planejado' THEN 1 ELSE 0 END) as planejado,
			SUM(CASE WHEN status = 'Em produção' THEN 1 ELSE 0 END) as em_producao,
			SUM(CASE WHEN status = 'Aprovado' THEN 1 ELSE 0 END) as aprovado,
			SUM(CASE WHEN status = 'Publicado' THEN 1 ELSE 0 END) as publicado
		`).Scan(&stats).Error

	return &stats, err
}
