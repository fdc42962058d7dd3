package dto

// ==================== 请求 DTO ====================

// NFTRequest 发行 NFT 请求
// 必填字段缺失时由 binding 在边界报 400，绝不静默补默认值
type NFTRequest struct {
	NomeNFT          string  `json:"nomeNFT" binding:"required"`
	Descricao        string  `json:"descricao" binding:"required"`
	Wallet           string  `json:"wallet" binding:"required"`
	NomeProprietario string  `json:"nomeProprietario" binding:"required"`
	DataInicio       string  `json:"dataInicio" binding:"required"`
	DataFim          string  `json:"dataFim" binding:"required"`
	ValorDiaria      float64 `json:"valorDiaria" binding:"required,gt=0"`
	Moeda            string  `json:"moeda" binding:"required"`

	// 可选字段（有文档化默认值）
	ImagemURL            string   `json:"imagemUrl"`
	Regras               string   `json:"regras"`
	PrecoSugerido        *float64 `json:"precoSugerido"`
	PoliticaCancelamento string   `json:"politicaCancelamento"` // 默认 moderada
}

// ==================== 元数据 ====================

// NFTMetadata ERC-721 元数据
type NFTMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Attributes  []NFTAttribute `json:"attributes"`
}

// NFTAttribute 元数据属性项
type NFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// ==================== 响应 DTO ====================

// NFTResultado 发行成功结果
type NFTResultado struct {
	Agente              string `json:"agente"`
	Status              string `json:"status"`
	Mensagem            string `json:"mensagem"`
	TokenURI            string `json:"tokenURI"`
	IpfsHash            string `json:"ipfsHash"`
	TxHash              string `json:"txHash"`
	IDNFT               string `json:"idNFT"`
	ProvaVerificacaoNFT string `json:"provaVerificacaoNFT,omitempty"`
	Timestamp           string `json:"timestamp"`
}
