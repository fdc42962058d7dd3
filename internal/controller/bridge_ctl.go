package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// BridgeController 前端预览直通接口（不包信封，返回代理原始结果）
type BridgeController struct {
	mktSvc    *service.MktService
	imagemSvc *service.ImagemService
}

func NewBridgeController(mktSvc *service.MktService, imagemSvc *service.ImagemService) *BridgeController {
	return &BridgeController{
		mktSvc:    mktSvc,
		imagemSvc: imagemSvc,
	}
}

// MktPreviewReq 预览请求包装
type MktPreviewReq struct {
	Payload dto.MktEntrada `json:"payload" binding:"required"`
}

// ImagemPreviewReq 预览请求包装
type ImagemPreviewReq struct {
	Payload dto.ImagemEntrada `json:"payload" binding:"required"`
}

// MktPreview 营销内容预览
// @Summary 营销内容预览
// @Description 接收结构化 payload（imovel、contexto_mercado、preferencias、promocao、only_json）并直通给 MKT 代理
// @Tags mkt
// @Accept json
// @Produce json
// @Param request body MktPreviewReq true "预览请求"
// @Success 200 {object} dto.MktJSON
// @Router /mkt/preview [post]
func (c *BridgeController) MktPreview(ctx *gin.Context) {
	var req MktPreviewReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, c.mktSvc.Executar(&req.Payload))
}

// ImagemPreview 图像 prompt 预览
// @Summary 图像 prompt 预览
// @Description 直通给图像代理（支持 only_prompt）
// @Tags Image
// @Accept json
// @Produce json
// @Param request body ImagemPreviewReq true "预览请求"
// @Success 200 {object} dto.ImagemPromptResposta
// @Router /imagem/preview [post]
func (c *BridgeController) ImagemPreview(ctx *gin.Context) {
	var req ImagemPreviewReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}
	resultado, err := c.imagemSvc.Executar(ctx.Request.Context(), &req.Payload)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, resultado)
}
