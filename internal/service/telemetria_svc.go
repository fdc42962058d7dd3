package service

import (
	"context"
	"time"

	"nftdiarias_dev_v1_202608/internal/repository"
)

// TelemetriaService 遥测统计服务
type TelemetriaService struct {
	eventRepo repository.J360EventRepository
}

// NewTelemetriaService 创建遥测服务
func NewTelemetriaService(eventRepo repository.J360EventRepository) *TelemetriaService {
	return &TelemetriaService{eventRepo: eventRepo}
}

// GetStats 时间窗内的事件统计；窗口缺省为最近 30 天
func (s *TelemetriaService) GetStats(ctx context.Context, start, end time.Time) (*repository.J360Stats, error) {
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}
	return s.eventRepo.GetStats(ctx, start, end)
}

// GetDailyCounts 最近 N 天的按天事件计数
func (s *TelemetriaService) GetDailyCounts(ctx context.Context, dias int) ([]repository.DailyEventStats, error) {
	if dias <= 0 {
		dias = 7
	}
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -dias)
	return s.eventRepo.GetDailyCounts(ctx, start, end)
}
