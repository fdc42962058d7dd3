package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// OrquestradorController 多代理编排接口
type OrquestradorController struct {
	consultorSvc *service.ConsultorService
	nftSvc       *service.NFTService
	imagemSvc    *service.ImagemService
}

func NewOrquestradorController(
	consultorSvc *service.ConsultorService,
	nftSvc *service.NFTService,
	imagemSvc *service.ImagemService) *OrquestradorController {
	return &OrquestradorController{
		consultorSvc: consultorSvc,
		nftSvc:       nftSvc,
		imagemSvc:    imagemSvc,
	}
}

// EmitirNFT 完整发行编排：consultor -> nft -> imagem
// @Summary 编排发行 NFT
// @Description 先跑市场顾问，把可选的价格/取消政策合并进 NFT 请求并铸造，最后生成配图
// @Tags Orquestrador
// @Accept json
// @Produce json
// @Param request body dto.OrquestradorEmitirReq true "编排请求"
// @Success 200 {object} dto.OrquestradorEmitirResp
// @Failure 400 {object} dto.ErroResp "参数错误"
// @Failure 500 {object} dto.ErroResp "编排失败"
// @Router /api/orquestrador/emitir-nft [post]
func (c *OrquestradorController) EmitirNFT(ctx *gin.Context) {
	var req dto.OrquestradorEmitirReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}
	if req.NFT == nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("campo 'nft' é obrigatório"))
		return
	}

	// 1) 市场顾问（payload 可选，有默认城市）
	consultorIn := req.Consultor
	if consultorIn == nil {
		consultorIn = &dto.ConsultorEntrada{
			Cidades: []string{"Florianopolis"},
			Regioes: []string{"Brasil"},
			Moeda:   "BRL",
		}
	}
	resultadoConsultor := c.consultorSvc.Executar(consultorIn)

	// 2) 顶层快捷字段合并进 NFT 请求
	nftReq := *req.NFT
	if req.PrecoSugerido != nil {
		nftReq.PrecoSugerido = req.PrecoSugerido
	}
	if req.PoliticaCancelamento != "" {
		nftReq.PoliticaCancelamento = req.PoliticaCancelamento
	}
	if nftReq.PoliticaCancelamento == "" {
		nftReq.PoliticaCancelamento = "moderada"
	}

	resultadoNFT, err := c.nftSvc.Executar(ctx.Request.Context(), &nftReq)
	if err != nil {
		log.Printf("[ERRO] Falha na orquestração: %v", err)
		ctx.JSON(http.StatusInternalServerError, dto.Falha("Erro na orquestração: "+err.Error()))
		return
	}

	// 3) 配图（thumb/banner）
	descricao := req.Descricao
	if descricao == "" {
		descricao = "imagem do NFT de diárias"
	}
	resultadoImg := c.imagemSvc.ExecutarTexto(descricao)

	ctx.JSON(http.StatusOK, dto.OrquestradorEmitirResp{
		Sucesso:   true,
		Consultor: dto.OK(resultadoConsultor),
		NFT:       dto.OK(resultadoNFT),
		Imagem:    resultadoImg,
	})
}
