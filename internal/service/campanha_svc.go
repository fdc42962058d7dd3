package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/model"
	"nftdiarias_dev_v1_202608/internal/repository"
)

// CampanhaService 营销活动日历服务
type CampanhaService struct {
	campanhaRepo repository.CampanhaRepository
}

// NewCampanhaService 创建活动服务
func NewCampanhaService(campanhaRepo repository.CampanhaRepository) *CampanhaService {
	return &CampanhaService{campanhaRepo: campanhaRepo}
}

// Listar 返回全部活动条目
func (s *CampanhaService) Listar(ctx context.Context) ([]model.Campanha, error) {
	return s.campanhaRepo.List(ctx)
}

// Criar 新建活动条目
// 缺省值：Data = 今天，Status = Planejado，Responsável = equipe
func (s *CampanhaService) Criar(ctx context.Context, req *dto.CampanhaCreateReq) (*model.Campanha, error) {
	campanha := &model.Campanha{
		ID:          uuid.New().String(),
		Data:        req.Data,
		Tema:        req.Tema,
		Formato:     req.Formato,
		Responsavel: req.Responsavel,
		Status:      req.Status,
	}
	if campanha.Data == "" {
		campanha.Data = time.Now().Format("2006-01-02")
	}
	if campanha.Responsavel == "" {
		campanha.Responsavel = "equipe"
	}
	if campanha.Status == "" {
		campanha.Status = model.CampanhaStatusPlanejado
	}
	if !model.CampanhaStatusValido(campanha.Status) {
		return nil, fmt.Errorf("%w: %q", ErrStatusInvalido, campanha.Status)
	}

	if err := s.campanhaRepo.Create(ctx, campanha); err != nil {
		return nil, fmt.Errorf("falha ao criar campanha: %w", err)
	}
	return campanha, nil
}

// AtualizarStatus 更新单条活动状态
// 状态不合法返回 ErrStatusInvalido，条目不存在返回 ErrCampanhaNaoEncontrada
func (s *CampanhaService) AtualizarStatus(ctx context.Context, id, status string) error {
	if !model.CampanhaStatusValido(status) {
		return ErrStatusInvalido
	}
	rows, err := s.campanhaRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("falha ao atualizar campanha: %w", err)
	}
	if rows == 0 {
		return ErrCampanhaNaoEncontrada
	}
	return nil
}

// GetStats 活动统计（总数 + 各状态计数）
func (s *CampanhaService) GetStats(ctx context.Context) (*repository.CampanhaStats, error) {
	return s.campanhaRepo.GetStats(ctx)
}

// 业务错误（controller 映射为 422 / 404）
var (
	ErrStatusInvalido        = fmt.Errorf("status de campanha inválido")
	ErrCampanhaNaoEncontrada = fmt.Errorf("campanha não encontrada")
)
