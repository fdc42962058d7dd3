package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nftdiarias_dev_v1_202608/internal/controller"

	_ "nftdiarias_dev_v1_202608/docs"
)

// CORSMiddleware 全放行跨域（前端与编排器分开部署）
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Controllers 控制器集合
type Controllers struct {
	Agente       *controller.AgenteController
	Bridge       *controller.BridgeController
	NFT          *controller.NFTController
	Consultor    *controller.ConsultorController
	Tutor        *controller.TutorController
	Campanha     *controller.CampanhaController
	Telemetria   *controller.TelemetriaController
	Orquestrador *controller.OrquestradorController
}

// SetupRouter 创建引擎并注册所有路由
func SetupRouter(ctls *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	InitRoutes(r, ctls)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	agenteCtl := ctls.Agente
	bridgeCtl := ctls.Bridge
	nftCtl := ctls.NFT
	consultorCtl := ctls.Consultor
	tutorCtl := ctls.Tutor
	campanhaCtl := ctls.Campanha
	telemetriaCtl := ctls.Telemetria
	orquestradorCtl := ctls.Orquestrador

	r.Use(CORSMiddleware())

	// 1. 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"mensagem": "Orquestrador EIAH ativo."})
	})

	// 2. Swagger 文档路由
	// 访问 http://localhost:8000/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 3. 通用代理入口
	r.GET("/executar/:agente", agenteCtl.ExecutarGet)
	r.POST("/executar/:agente", agenteCtl.ExecutarPost)

	// 4. 前端预览直通
	r.POST("/mkt/preview", bridgeCtl.MktPreview)
	r.POST("/imagem/preview", bridgeCtl.ImagemPreview)

	// 5. API 路由组
	api := r.Group("/api")
	{
		api.POST("/nft", nftCtl.Emitir)
		api.POST("/consultor-mercado", consultorCtl.Executar)
		api.POST("/tutor/progresso", tutorCtl.RegistrarProgresso)
		api.POST("/orquestrador/emitir-nft", orquestradorCtl.EmitirNFT)

		// campanha 营销日历
		campanha := api.Group("/campanha")
		{
			campanha.GET("", campanhaCtl.Listar)
			campanha.GET("/stats", campanhaCtl.Stats)
			campanha.POST("", campanhaCtl.Criar)
			campanha.PUT("/:id", campanhaCtl.AtualizarStatus)
		}

		// telemetria 遥测
		telemetria := api.Group("/telemetria")
		{
			telemetria.GET("/stats", telemetriaCtl.Stats)
			telemetria.GET("/diario", telemetriaCtl.Diario)
		}
	}
}
