package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// AgenteController 通用代理执行入口（GET 文本模式 / POST JSON 模式）
type AgenteController struct {
	mktSvc       *service.MktService
	imagemSvc    *service.ImagemService
	tutorSvc     *service.TutorService
	contratoSvc  *service.ContratoService
	nftSvc       *service.NFTService
	consultorSvc *service.ConsultorService
}

func NewAgenteController(
	mktSvc *service.MktService,
	imagemSvc *service.ImagemService,
	tutorSvc *service.TutorService,
	contratoSvc *service.ContratoService,
	nftSvc *service.NFTService,
	consultorSvc *service.ConsultorService) *AgenteController {
	return &AgenteController{
		mktSvc:       mktSvc,
		imagemSvc:    imagemSvc,
		tutorSvc:     tutorSvc,
		contratoSvc:  contratoSvc,
		nftSvc:       nftSvc,
		consultorSvc: consultorSvc,
	}
}

// ExecutarGet 以文本入参执行代理
// @Summary 执行代理（文本模式）
// @Description 支持 contrato、imagem、tutor、mkt 四个代理；nft 和 consultor_mercado 只接受 POST
// @Tags Agentes
// @Produce json
// @Param agente path string true "代理名"
// @Param entrada query string true "发送给代理的文本输入"
// @Success 200 {object} dto.SucessoResp
// @Failure 404 {object} map[string]string "代理不支持 GET"
// @Router /executar/{agente} [get]
func (c *AgenteController) ExecutarGet(ctx *gin.Context) {
	agente := ctx.Param("agente")
	entrada, ok := ctx.GetQuery("entrada")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Falha("parâmetro 'entrada' é obrigatório"))
		return
	}

	log.Printf("[ROUTER][GET] Executando agente '%s' com entrada: '%s'", agente, entrada)

	var resultado any
	var err error
	switch agente {
	case "contrato":
		resultado = c.contratoSvc.Executar(entrada)
	case "imagem":
		resultado = c.imagemSvc.ExecutarTexto(entrada)
	case "tutor":
		resultado, err = c.tutorSvc.Executar(ctx.Request.Context(), entrada)
	case "mkt":
		resultado = c.mktSvc.ExecutarTexto(entrada)
	default:
		ctx.JSON(http.StatusNotFound, gin.H{
			"detail": "Agente '" + agente + "' não disponível via GET. Use POST para: ['nft','consultor_mercado'].",
		})
		return
	}

	if err != nil {
		log.Printf("[ERRO][GET] Falha agente '%s': %v", agente, err)
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resultado))
}

// ExecutarPost 以 JSON 入参执行代理
// @Summary 执行代理（JSON 模式）
// @Description 支持 nft、consultor_mercado、mkt；contrato/imagem/tutor 只接受 GET
// @Tags Agentes
// @Accept json
// @Produce json
// @Param agente path string true "代理名"
// @Success 200 {object} dto.SucessoResp
// @Failure 404 {object} map[string]string "代理不支持 POST"
// @Router /executar/{agente} [post]
func (c *AgenteController) ExecutarPost(ctx *gin.Context) {
	agente := ctx.Param("agente")
	log.Printf("[ROUTER][POST] Executando agente '%s'", agente)

	switch agente {
	case "nft":
		var req dto.NFTRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
			return
		}
		resultado, err := c.nftSvc.Executar(ctx.Request.Context(), &req)
		if err != nil {
			log.Printf("[ERRO][POST] Falha agente 'nft': %v", err)
			ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.OK(resultado))

	case "consultor_mercado":
		var req dto.ConsultorEntrada
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.OK(c.consultorSvc.Executar(&req)))

	case "mkt":
		var req dto.MktEntrada
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.OK(c.mktSvc.Executar(&req)))

	default:
		ctx.JSON(http.StatusNotFound, gin.H{
			"detail": "Agente '" + agente + "' não disponível via POST. Use GET para: ['contrato','imagem','tutor','mkt'].",
		})
	}
}
