package service

import (
	"fmt"
	"log"
)

// ContratoService 合同分析代理（占位实现，等待法务引擎接入）
type ContratoService struct{}

// NewContratoService 创建合同服务
func NewContratoService() *ContratoService {
	return &ContratoService{}
}

// ContratoResposta 合同分析响应
type ContratoResposta struct {
	Agente   string `json:"agente"`
	Status   string `json:"status"`
	Resposta string `json:"resposta"`
}

// Executar 执行合同分析
func (s *ContratoService) Executar(entrada string) *ContratoResposta {
	log.Printf("[AGENTE CONTRATO] Entrada recebida: %s", entrada)
	return &ContratoResposta{
		Agente:   "contrato",
		Status:   "ok",
		Resposta: fmt.Sprintf("Análise do contrato realizada com sucesso: %s", entrada),
	}
}

// ValidacaoContrato 合同校验结果
type ValidacaoContrato struct {
	Valido    bool     `json:"valido"`
	Clausulas []string `json:"clausulas"`
}

// ValidarContrato 校验合同文本
// TODO: conectar ao motor de cláusulas quando o serviço jurídico estiver disponível
func (s *ContratoService) ValidarContrato(documento string) *ValidacaoContrato {
	return &ValidacaoContrato{
		Valido:    true,
		Clausulas: []string{"sem abusos", "em conformidade"},
	}
}
