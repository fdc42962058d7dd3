package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// TelemetriaController 遥测统计接口
type TelemetriaController struct {
	telemetriaSvc *service.TelemetriaService
}

func NewTelemetriaController(telemetriaSvc *service.TelemetriaService) *TelemetriaController {
	return &TelemetriaController{telemetriaSvc: telemetriaSvc}
}

// Stats 遥测事件统计
// @Summary 遥测事件统计
// @Description 时间窗内的事件总数、各模式计数、平均风险分和人工复核率
// @Tags Telemetria
// @Produce json
// @Param start query string false "窗口起点 (RFC3339)，缺省为 30 天前"
// @Param end query string false "窗口终点 (RFC3339)，缺省为当前时刻"
// @Success 200 {object} repository.J360Stats
// @Router /api/telemetria/stats [get]
func (c *TelemetriaController) Stats(ctx *gin.Context) {
	var start, end time.Time
	if raw := ctx.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Falha("parâmetro 'start' inválido: "+err.Error()))
			return
		}
		start = t
	}
	if raw := ctx.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Falha("parâmetro 'end' inválido: "+err.Error()))
			return
		}
		end = t
	}

	stats, err := c.telemetriaSvc.GetStats(ctx.Request.Context(), start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// Diario 按天事件计数
// @Summary 按天遥测计数
// @Tags Telemetria
// @Produce json
// @Param dias query int false "天数" default(7)
// @Success 200 {array} repository.DailyEventStats
// @Router /api/telemetria/diario [get]
func (c *TelemetriaController) Diario(ctx *gin.Context) {
	dias, _ := strconv.Atoi(ctx.DefaultQuery("dias", "7"))
	stats, err := c.telemetriaSvc.GetDailyCounts(ctx.Request.Context(), dias)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Falha(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
