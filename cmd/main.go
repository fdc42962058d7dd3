package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"nftdiarias_dev_v1_202608/internal/controller"
	"nftdiarias_dev_v1_202608/internal/model"
	"nftdiarias_dev_v1_202608/internal/repository"
	"nftdiarias_dev_v1_202608/internal/router"
	"nftdiarias_dev_v1_202608/internal/service"
	"nftdiarias_dev_v1_202608/internal/task"
	"nftdiarias_dev_v1_202608/pkg/database"
)

// @title Orquestrador EIAH NFTDiárias
// @description API para orquestrar agentes IA: contrato, tutor, imagem, mkt, nft, consultor_mercado
// @version 1.0.0
func main() {
	// 0. 加载 .env（不存在时静默跳过）
	if err := godotenv.Load(); err == nil {
		log.Println("[ENV] .env carregado")
	}

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Campanha repository.CampanhaRepository
	J360     repository.J360EventRepository
}

// Services 服务集合
type Services struct {
	Mkt        *service.MktService
	Imagem     *service.ImagemService
	Tutor      *service.TutorService
	Contrato   *service.ContratoService
	NFT        *service.NFTService
	Consultor  *service.ConsultorService
	Market     *service.MarketDataService
	Campanha   *service.CampanhaService
	Telemetria *service.TelemetriaService
	Storage    *service.StorageService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		getEnv("DATABASE_DSN", ""),
		// Campanha
		&model.Campanha{},
		// Telemetria
		&model.J360EventLog{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Campanha: repository.NewCampanhaRepository(db),
		J360:     repository.NewJ360EventRepository(db),
	}

	// -------- 存储服务 --------
	storageSvc := initStorageService()

	// -------- 数据集服务 --------
	marketSvc := service.NewMarketDataService(
		service.CityDatasetsFromEnv(getEnv("CITY_DATASETS", "")),
	)

	// -------- 协作方 bridge --------
	nftBridge := service.NewNFTBridgeClient(getEnv("NFT_BRIDGE_URL", "http://localhost:9100"))
	var tts service.TTSClient
	if url := getEnv("TTS_BRIDGE_URL", ""); url != "" {
		tts = service.NewTTSBridgeClient(url)
	}

	// -------- 业务服务 --------
	services := &Services{
		Mkt:        service.NewMktService(),
		Imagem:     service.NewImagemService(repos.J360, storageSvc),
		Tutor:      service.NewTutorService(tts),
		Contrato:   service.NewContratoService(),
		NFT:        service.NewNFTService(nftBridge, nftBridge, nftBridge),
		Consultor:  service.NewConsultorService(marketSvc),
		Market:     marketSvc,
		Campanha:   service.NewCampanhaService(repos.Campanha),
		Telemetria: service.NewTelemetriaService(repos.J360),
		Storage:    storageSvc,
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Agente: controller.NewAgenteController(
			services.Mkt, services.Imagem, services.Tutor,
			services.Contrato, services.NFT, services.Consultor,
		),
		Bridge:       controller.NewBridgeController(services.Mkt, services.Imagem),
		NFT:          controller.NewNFTController(services.NFT),
		Consultor:    controller.NewConsultorController(services.Consultor),
		Tutor:        controller.NewTutorController(services.Tutor),
		Campanha:     controller.NewCampanhaController(services.Campanha),
		Telemetria:   controller.NewTelemetriaController(services.Telemetria),
		Orquestrador: controller.NewOrquestradorController(services.Consultor, services.NFT, services.Imagem),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initStorageService 初始化存储服务；未配置 provider 时返回 nil，清单退回本地路径
func initStorageService() *service.StorageService {
	cfg := service.StorageConfigFromEnv(getEnv)
	if cfg == nil {
		return nil
	}
	storageSvc, err := service.NewStorageService(cfg)
	if err != nil {
		log.Printf("警告: 存储服务初始化失败: %v", err)
		return nil
	}
	return storageSvc
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	datasetTask := task.NewDatasetTask(deps.Services.Market)
	datasetTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8000")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("Orquestrador EIAH escutando em :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
