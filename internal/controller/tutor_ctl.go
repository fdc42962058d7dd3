package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/service"
)

// TutorController 教程代理接口
type TutorController struct {
	tutorSvc *service.TutorService
}

func NewTutorController(tutorSvc *service.TutorService) *TutorController {
	return &TutorController{tutorSvc: tutorSvc}
}

// RegistrarProgresso 记录学习进度
// @Summary 记录教程进度
// @Tags Tutor
// @Accept json
// @Produce json
// @Param request body dto.TutorProgressoReq true "进度数据"
// @Success 200 {object} dto.TutorProgressoResposta
// @Router /api/tutor/progresso [post]
func (c *TutorController) RegistrarProgresso(ctx *gin.Context) {
	var req dto.TutorProgressoReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Falha("payload inválido: "+err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, c.tutorSvc.RegistrarProgresso(&req))
}
