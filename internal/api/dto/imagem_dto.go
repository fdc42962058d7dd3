package dto

// ==================== 请求 DTO ====================

// ImagemEntrada 图像代理入参（结构化模式）
type ImagemEntrada struct {
	Modo string `json:"modo"`

	// only_prompt: true 时只返回 prompt + 报告，不返回产物清单
	OnlyPrompt bool `json:"only_prompt"`

	// enhance 模式素材
	ImagemURL    string   `json:"imagem_url"`
	ImagemBase64 string   `json:"imagem_base64"`
	Overlays     []string `json:"overlays"`
	QRUrl        string   `json:"qr_url"`

	// nft 模式素材
	Estilo           string `json:"estilo"`
	Tema             string `json:"tema"`
	Web3             string `json:"web3"`
	ImagemReferencia string `json:"imagem_referencia"`

	// frontend 模式素材
	Alvos         string   `json:"alvos"`
	MensagemChave string   `json:"mensagem_chave"`
	Secoes        []string `json:"secoes"`

	AltText string `json:"alt_text"`

	Imovel       *Imovel         `json:"imovel"`
	Preferencias *Preferencias   `json:"preferencias"`
	Brand        *Brand          `json:"brand"`
	Compliance   *ComplianceDecl `json:"compliance"`
	MktContext   *MktContext     `json:"mkt_context"`
}

// Brand 视觉识别配置
type Brand struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Font      string `json:"font"`
}

// ComplianceDecl 权利/地域/品牌使用声明
type ComplianceDecl struct {
	Territory        string   `json:"territory"`
	RightsConfirmed  bool     `json:"rights_confirmed"`
	ThirdPartyBrands string   `json:"third_party_brands"`
	Disclaimers      []string `json:"disclaimers"`
}

// MktContext 营销声明上下文
type MktContext struct {
	CTA             string   `json:"cta"`
	ClaimsAllowlist []string `json:"claims_allowlist"`
	ClaimsUsed      []string `json:"claims_used"`
	Keywords        []string `json:"keywords"`
}

// ==================== 响应 DTO ====================

// ComplianceReport 合规检查报告
type ComplianceReport struct {
	Territory              string   `json:"territory"`
	RiskScore              float64  `json:"risk_score"`
	Flags                  []string `json:"flags"`
	DisclaimersAplicados   []string `json:"disclaimers_aplicados"`
	DireitosImagemOK       bool     `json:"direitos_imagem_ok"`
	NecessitaRevisaoHumana bool     `json:"necessita_revisao_humana"`
}

// AlignmentReport 营销声明对齐报告
type AlignmentReport struct {
	CTAUsada        string   `json:"cta_usada"`
	ClaimsValidadas []string `json:"claims_validadas"`
	Violacoes       []string `json:"violacoes"`
	Keywords        []string `json:"keywords"`
}

// J360Event 遥测事件
type J360Event struct {
	Type        string   `json:"type"`
	Agent       string   `json:"agent"`
	Mode        string   `json:"mode"`
	Persona     string   `json:"persona"`
	RiskScore   float64  `json:"risk_score"`
	Flags       []string `json:"flags"`
	PayloadHash string   `json:"payload_hash"`
}

// Artefato 模拟产物描述（真实生成服务接入前的清单占位）
type Artefato struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	PathOrURL string `json:"path_or_url"`
}

// Prompts 系统 + 用户 prompt 对
type Prompts struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// ImagemMeta 产物元信息
type ImagemMeta struct {
	AltText string   `json:"alt_text"`
	Brand   Brand    `json:"brand"`
	Notes   []string `json:"notes"`
}

// ImagemPromptResposta only_prompt 模式响应
type ImagemPromptResposta struct {
	Agente             string           `json:"agente"`
	Status             string           `json:"status"`
	Mensagem           string           `json:"mensagem"`
	Prompts            Prompts          `json:"prompts"`
	ComplianceReport   ComplianceReport `json:"compliance_report"`
	MktAlignmentReport AlignmentReport  `json:"mkt_alignment_report"`
	J360Event          J360Event        `json:"j360_event"`
	Timestamp          string           `json:"timestamp"`
}

// ImagemConteudo 完整模式内容体
type ImagemConteudo struct {
	Prompts            Prompts          `json:"prompts"`
	Artefatos          []Artefato       `json:"artefatos"`
	Meta               ImagemMeta       `json:"meta"`
	ComplianceReport   ComplianceReport `json:"compliance_report"`
	MktAlignmentReport AlignmentReport  `json:"mkt_alignment_report"`
	J360Event          J360Event        `json:"j360_event"`
}

// ImagemResposta 完整模式响应
type ImagemResposta struct {
	Agente    string         `json:"agente"`
	Status    string         `json:"status"`
	Mensagem  string         `json:"mensagem"`
	Conteudo  ImagemConteudo `json:"conteudo"`
	Timestamp string         `json:"timestamp"`
}

// ImagemSimplesResposta 兼容旧 string 输入的简单响应
type ImagemSimplesResposta struct {
	Agente    string `json:"agente"`
	Status    string `json:"status"`
	Mensagem  string `json:"mensagem"`
	Timestamp string `json:"timestamp"`
}
