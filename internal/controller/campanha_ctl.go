package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// CampanhaController 营销活动日历接口
type CampanhaController struct {
	campanhaSvc *service.CampanhaService
}

func NewCampanhaController(campanhaSvc *service.CampanhaService) *CampanhaController {
	return &CampanhaController{campanhaSvc: campanhaSvc}
}

// Listar 获取活动列表
// @Summary 获取活动日历
// @Description 返回前端日历所需的完整列表（保留带重音的 'Responsável' 字段）
// @Tags campanha
// @Produce json
// @Success 200 {array} model.Campanha
// @Router /api/campanha [get]
func (c *CampanhaController) Listar(ctx *gin.Context) {
	itens, err := c.campanhaSvc.Listar(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, itens)
}

// Stats 活动状态统计
// @Summary 活动状态统计
// @Tags campanha
// @Produce json
// @Success 200 {object} repository.CampanhaStats
// @Router /api/campanha/stats [get]
func (c *CampanhaController) Stats(ctx *gin.Context) {
	stats, err := c.campanhaSvc.GetStats(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// Criar 新建活动条目
// @Summary 新建活动条目
// @Tags campanha
// @Accept json
// @Produce json
// @Param request body dto.CampanhaCreateReq true "活动数据"
// @Success 200 {object} model.Campanha
// @Failure 422 {object} map[string]string "状态不合法"
// @Failure 500 {object} dto.ErroResp "持久化失败"
// @Router /api/campanha [post]
func (c *CampanhaController) Criar(ctx *gin.Context) {
	var req dto.CampanhaCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}

	item, err := c.campanhaSvc.Criar(ctx.Request.Context(), &req)
	switch {
	case errors.Is(err, service.ErrStatusInvalido):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Status inválido"})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
	default:
		ctx.JSON(http.StatusOK, item)
	}
}

// AtualizarStatus 更新单条活动状态
// @Summary 更新活动状态
// @Description Body: { "Status": "Planejado|Em produção|Aprovado|Publicado" }
// @Tags campanha
// @Accept json
// @Produce json
// @Param id path string true "活动ID"
// @Param request body dto.CampanhaStatusReq true "新状态"
// @Success 200 {object} dto.CampanhaUpdateResp
// @Failure 404 {object} map[string]string "条目不存在"
// @Failure 422 {object} map[string]string "状态不合法"
// @Router /api/campanha/{id} [put]
func (c *CampanhaController) AtualizarStatus(ctx *gin.Context) {
	var req dto.CampanhaStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Status inválido"})
		return
	}

	err := c.campanhaSvc.AtualizarStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	switch {
	case errors.Is(err, service.ErrStatusInvalido):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Status inválido"})
	case errors.Is(err, service.ErrCampanhaNaoEncontrada):
		ctx.JSON(http.StatusNotFound, gin.H{"detail": "Item não encontrado"})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
	default:
		ctx.JSON(http.StatusOK, dto.CampanhaUpdateResp{Success: true})
	}
}
