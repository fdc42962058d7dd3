package dto

// OrquestradorEmitirReq 编排发行请求：consultor -> nft -> imagem
type OrquestradorEmitirReq struct {
	Consultor *ConsultorEntrada `json:"consultor"`
	NFT       *NFTRequest       `json:"nft"`

	// 顶层快捷字段，覆盖 nft 内同名字段
	PrecoSugerido        *float64 `json:"precoSugerido"`
	PoliticaCancelamento string   `json:"politicaCancelamento"`

	// 图像代理的文本输入
	Descricao string `json:"descricao"`
}

// OrquestradorEmitirResp 编排响应，聚合三个代理的结果
type OrquestradorEmitirResp struct {
	Sucesso   bool `json:"sucesso"`
	Consultor any  `json:"consultor"`
	NFT       any  `json:"nft"`
	Imagem    any  `json:"imagem"`
}
