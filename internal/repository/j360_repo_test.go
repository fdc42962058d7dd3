package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nftdiarias_dev_v1_202608/internal/model"
)

func setupJ360TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.J360EventLog{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

func seedEvento(t *testing.T, repo J360EventRepository, modo string, risco float64, revisao bool) {
	t.Helper()
	err := repo.Create(context.Background(), &model.J360EventLog{
		EventType:        model.J360EventImageGenerate,
		Agente:           "imagem",
		Modo:             modo,
		Persona:          "luxo",
		RiskScore:        risco,
		Flags:            []byte(`["rights_not_confirmed"]`),
		NecessitaRevisao: revisao,
		PayloadHash:      "abc123def456",
	})
	if err != nil {
		t.Fatalf("seed falhou: %v", err)
	}
}

func TestJ360RepoCreateEGet(t *testing.T) {
	db := setupJ360TestDB(t)
	repo := NewJ360EventRepository(db)

	seedEvento(t, repo, "enhance", 0.8, true)

	ev, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("busca falhou: %v", err)
	}
	if ev.Modo != "enhance" || ev.RiskScore != 0.8 || !ev.NecessitaRevisao {
		t.Errorf("evento errado: %+v", ev)
	}
	if ev.PayloadHash != "abc123def456" {
		t.Errorf("hash errado: %q", ev.PayloadHash)
	}
}

func TestJ360RepoStats(t *testing.T) {
	db := setupJ360TestDB(t)
	repo := NewJ360EventRepository(db)
	ctx := context.Background()

	seedEvento(t, repo, "enhance", 0.8, true)
	seedEvento(t, repo, "enhance", 0.2, false)
	seedEvento(t, repo, "nft", 0.4, false)
	seedEvento(t, repo, "frontend", 0.2, false)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)

	stats, err := repo.GetStats(ctx, start, end)
	if err != nil {
		t.Fatalf("stats falhou: %v", err)
	}

	if stats.TotalEvents != 4 {
		t.Errorf("total = %d, esperava 4", stats.TotalEvents)
	}
	if stats.EnhanceCount != 2 || stats.NftCount != 1 || stats.FrontendCount != 1 {
		t.Errorf("contagens por modo erradas: %+v", stats)
	}
	// (0.8+0.2+0.4+0.2)/4 = 0.4
	if stats.AvgRiskScore < 0.39 || stats.AvgRiskScore > 0.41 {
		t.Errorf("risco médio = %v, esperava ~0.4", stats.AvgRiskScore)
	}
	// 1 de 4 exige revisão
	if stats.NeedReviewRate < 0.24 || stats.NeedReviewRate > 0.26 {
		t.Errorf("taxa de revisão = %v, esperava ~0.25", stats.NeedReviewRate)
	}

	t.Run("janela sem eventos zera tudo", func(t *testing.T) {
		antes, err := repo.GetStats(ctx, start.Add(-48*time.Hour), start.Add(-24*time.Hour))
		if err != nil {
			t.Fatalf("stats falhou: %v", err)
		}
		if antes.TotalEvents != 0 || antes.AvgRiskScore != 0 {
			t.Errorf("janela vazia deveria zerar: %+v", antes)
		}
	})
}

func TestJ360RepoDailyCounts(t *testing.T) {
	db := setupJ360TestDB(t)
	repo := NewJ360EventRepository(db)
	ctx := context.Background()

	seedEvento(t, repo, "enhance", 0.8, true)
	seedEvento(t, repo, "nft", 0.2, false)

	diario, err := repo.GetDailyCounts(ctx, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("diário falhou: %v", err)
	}
	if len(diario) != 1 {
		t.Fatalf("esperava 1 dia, got %d", len(diario))
	}
	if diario[0].TotalEvents != 2 {
		t.Errorf("contagem do dia = %d, esperava 2", diario[0].TotalEvents)
	}
}
