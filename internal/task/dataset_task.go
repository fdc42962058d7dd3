package task

import (
	"log"

	"github.com/robfig/cron/v3"

	"nftdiarias_dev_v1_202608/internal/service"
)

// DatasetTask 城市数据集定时刷新任务
type DatasetTask struct {
	MarketSvc *service.MarketDataService
	Cron      *cron.Cron
}

func NewDatasetTask(marketSvc *service.MarketDataService) *DatasetTask {
	return &DatasetTask{
		MarketSvc: marketSvc,
		Cron:      cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *DatasetTask) Start() {
	if !t.MarketSvc.TemDados() {
		log.Println("[Task] Nenhum dataset de cidade configurado, refresh desativado")
		return
	}

	// 首次执行：预热缓存，让第一个请求不用等下载
	go func() {
		log.Println("[Task] Serviço iniciado, aquecendo datasets de cidades...")
		t.MarketSvc.RefreshAll()
	}()

	// 每天 03:30 刷新（datasets do InsideAirbnb mudam no máximo 1x/dia）
	_, err := t.Cron.AddFunc("0 30 3 * * *", func() {
		t.MarketSvc.RefreshAll()
	})
	if err != nil {
		log.Fatalf("无法启动 dataset 定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("Tarefa de refresh de datasets iniciada (diária às 03:30)")
}

// Stop 停止定时任务
func (t *DatasetTask) Stop() {
	if t.Cron != nil {
		t.Cron.Stop()
	}
}
