package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// ConsultorController 市场顾问接口
type ConsultorController struct {
	consultorSvc *service.ConsultorService
}

func NewConsultorController(consultorSvc *service.ConsultorService) *ConsultorController {
	return &ConsultorController{consultorSvc: consultorSvc}
}

// Executar 执行市场顾问分析
// @Summary 市场顾问分析
// @Description 生成平台对比表、优先级建议、合同条款、Solidity 草稿和行动计划
// @Tags Consultor
// @Accept json
// @Produce json
// @Param request body dto.ConsultorEntrada true "分析参数（全部可选）"
// @Success 200 {object} dto.SucessoResp
// @Router /api/consultor-mercado [post]
func (c *ConsultorController) Executar(ctx *gin.Context) {
	var req dto.ConsultorEntrada
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(c.consultorSvc.Executar(&req)))
}
