package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// NFTController NFT 发行接口
type NFTController struct {
	nftSvc *service.NFTService
}

func NewNFTController(nftSvc *service.NFTService) *NFTController {
	return &NFTController{nftSvc: nftSvc}
}

// Emitir 发行 NFT
// @Summary 发行住宿 NFT
// @Description 校验请求，生成 ERC-721 元数据，上传 IPFS 后在链上铸造，并生成凭证 PDF
// @Tags NFT
// @Accept json
// @Produce json
// @Param request body dto.NFTRequest true "发行请求"
// @Success 200 {object} dto.SucessoResp
// @Failure 400 {object} dto.ErroResp "参数错误"
// @Failure 500 {object} dto.ErroResp "协作方失败"
// @Router /api/nft [post]
func (c *NFTController) Emitir(ctx *gin.Context) {
	var req dto.NFTRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}

	resultado, err := c.nftSvc.Executar(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("[ERRO] Execução do agente NFT-D falhou: %v", err)
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resultado))
}
