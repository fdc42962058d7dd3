package dto

// ==================== 请求 DTO ====================

// ConsultorEntrada 市场顾问代理入参（全部可选，有默认值）
type ConsultorEntrada struct {
	Cidades          []string `json:"cidades"`
	Regioes          []string `json:"regioes"`
	Moeda            string   `json:"moeda"`
	IncluirContratos *bool    `json:"incluir_contratos"`
	IncluirSolidity  *bool    `json:"incluir_solidity"`
}

// ==================== 响应 DTO ====================

// Sugestao 优先级改进建议
type Sugestao struct {
	Titulo          string   `json:"titulo"`
	Acao            string   `json:"acao"`
	ImpactoEstimado string   `json:"impacto_estimado"`
	Complexidade    string   `json:"complexidade"`
	Dependencias    []string `json:"dependencias"`
}

// PlanoAcaoItem 行动计划条目
type PlanoAcaoItem struct {
	Prazo string   `json:"prazo"`
	Itens []string `json:"itens"`
}

// InsightsPendentes 数据源接入状态
type InsightsPendentes struct {
	TemDadosReais bool   `json:"tem_dados_reais"`
	Mensagem      string `json:"mensagem"`
}

// CityMetrics 城市市场指标（无数据源时全部为 null）
type CityMetrics struct {
	Cidade        string   `json:"cidade"`
	TicketMedio   *float64 `json:"ticket_medio"`
	OcupacaoMedia *float64 `json:"ocupacao_media"`
	Sazonalidade  []string `json:"sazonalidade"`
	TiposImovel   []string `json:"tipos_imovel"`
	DuracaoMedia  *float64 `json:"duracao_media"`
	Fonte         string   `json:"fonte"`
	Erro          string   `json:"erro,omitempty"`
}

// ConsultorResultado 顾问代理完整结果
type ConsultorResultado struct {
	Agente              string                 `json:"agente"`
	Timestamp           string                 `json:"timestamp"`
	Moeda               string                 `json:"moeda"`
	ComparativoMarkdown string                 `json:"comparativo_markdown"`
	Sugestoes           []Sugestao             `json:"sugestoes"`
	ContratosTexto      string                 `json:"contratos_texto"`
	ContratoSolidity    string                 `json:"contrato_solidity"`
	PlanoAcao           []PlanoAcaoItem        `json:"plano_acao"`
	MetricasCidades     map[string]CityMetrics `json:"metricas_cidades,omitempty"`
	InsightsPendentes   InsightsPendentes      `json:"insights_pendentes"`
}
