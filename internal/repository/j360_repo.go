package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"nftdiarias_dev_v1_202608/internal/model"
)

// ==================== 仓储接口 ====================

// J360EventRepository 遥测事件仓储接口
type J360EventRepository interface {
	Create(ctx context.Context, event *model.J360EventLog) error
	GetByID(ctx context.Context, id int64) (*model.J360EventLog, error)

	// 统计查询
	GetStats(ctx context.Context, startTime, endTime time.Time) (*J360Stats, error)
	GetDailyCounts(ctx context.Context, startDate, endDate time.Time) ([]DailyEventStats, error)
}

// ==================== 统计结构 ====================

// J360Stats 遥测事件统计
type J360Stats struct {
	TotalEvents    int64   `json:"total_events"`
	EnhanceCount   int64   `json:"enhance_count"`
	NftCount       int64   `json:"nft_count"`
	FrontendCount  int64   `json:"frontend_count"`
	AvgRiskScore   float64 `json:"avg_risk_score"`
	NeedReviewRate float64 `json:"need_review_rate"`
}

// DailyEventStats 每日事件统计
type DailyEventStats struct {
	Date         string  `json:"date"`
	TotalEvents  int64   `json:"total_events"`
	AvgRiskScore float64 `json:"avg_risk_score"`
}

// ==================== 仓储实现 ====================

type j360EventRepo struct {
	db *gorm.DB
}

// NewJ360EventRepository 创建遥测事件仓储
func NewJ360EventRepository(db *gorm.DB) J360EventRepository {
	return &j360EventRepo{db: db}
}

func (r *j360EventRepo) Create(ctx context.Context, event *model.J360EventLog) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *j360EventRepo) GetByID(ctx context.Context, id int64) (*model.J360EventLog, error) {
	var event model.J360EventLog
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *j360EventRepo) GetStats(ctx context.Context, startTime, endTime time.Time) (*J360Stats, error) {
	var stats J360Stats

	query := r.db.WithContext(ctx).Model(&model.J360EventLog{})
	if !startTime.IsZero() {
		query = query.Where("created_at >= ?", startTime)
	}
	if !endTime.IsZero() {
		query = query.Where("created_at <= ?", endTime)
	}

	err := query.Select(`
		COUNT(*) as total_events,
		SUM(CASE WHEN modo = 'enhance' THEN 1 ELSE 0 END) as enhance_count,
		SUM(CASE WHEN modo = 'nft' THEN 1 ELSE 0 END) as nft_count,
		SUM(CASE WHEN modo = 'frontend' THEN 1 ELSE 0 END) as frontend_count,
		COALESCE(AVG(risk_score), 0) as avg_risk_score,
		COALESCE(AVG(CASE WHEN necessita_revisao THEN 1.0 ELSE 0.0 END), 0) as need_review_rate
	`).Scan(&stats).Error

	return &stats, err
}

func (r *j360EventRepo) GetDailyCounts(ctx context.Context, startDate, endDate time.Time) ([]DailyEventStats, error) {
	var stats []DailyEventStats

	err := r.db.WithContext(ctx).Model(&model.J360EventLog{}).
		Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Select(`
			DATE(created_at) as date,
			COUNT(*) as total_events,
			COALESCE(AVG(risk_score), 0) as avg_risk_score
		`).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&stats).Error

	return stats, err
}
