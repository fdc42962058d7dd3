package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/internal/model"
	"nftdiarias_dev_v1_202608/internal/repository"
	"nftdiarias_dev_v1_202608/pkg/utils"
)

// ==================== 生成模式 ====================

// Modo 图像生成模式（封闭枚举，禁止字符串散比较）
type Modo string

const (
	ModoEnhance  Modo = "enhance"
	ModoNft      Modo = "nft"
	ModoFrontend Modo = "frontend"
)

// ParseModo 解析模式；空值取默认 enhance，未知值报错
func ParseModo(s string) (Modo, error) {
	switch Modo(strings.ToLower(s)) {
	case "":
		return ModoEnhance, nil
	case ModoEnhance:
		return ModoEnhance, nil
	case ModoNft:
		return ModoNft, nil
	case ModoFrontend:
		return ModoFrontend, nil
	}
	return "", fmt.Errorf("modo inválido: %q (use enhance, nft ou frontend)", s)
}

// ==================== 常量 ====================

// SystemPrompt 图像代理的 system prompt（compliance + MKT + J_360 摘要）
const SystemPrompt = "Você é o agente de imagens ImageNFTDiarias. Produza imagens para 3 usos: " +
	"(1) Aprimorar fotos reais para marketplace; " +
	"(2) Arte do NFT (3D/flat, variações); " +
	"(3) Assets de frontend (banners, ícones, mockups). " +
	"Aplique identidade visual e acessibilidade (WCAG AA). " +
	"Inclua checklist de compliance (risco/flags/disclaimers/direitos) e alinhamento MKT " +
	"(CTA/claims allowlist/keywords). Gere j360_event com dados de telemetria. " +
	"Saída: artefatos + meta + compliance_report + mkt_alignment_report + j360_event."

// 合规默认值
const (
	territoryDefault        = "BR"
	brandPolicyAllowed      = "allowed"
	brandPolicyDefault      = "block"
	riskBase                = 0.2
	riskRightsNotConfirmed  = 0.4
	riskThirdPartyBrand     = 0.2
	riskHumanReviewMinScore = 0.6
)

// 风险标记
const (
	FlagRightsNotConfirmed  = "rights_not_confirmed"
	FlagThirdPartyBrandRisk = "third_party_brand_risk"
)

var disclaimersDefault = []string{
	"Imagens meramente ilustrativas.",
	"Sujeito a disponibilidade.",
}

// disclaimersNftTemplate só entra no texto do prompt nft; o
// compliance_report usa sempre o par padrão acima
var disclaimersNftTemplate = []string{
	"Imagens meramente ilustrativas.",
	"Não constitui oferta de investimento.",
}

var claimsAllowlistDefault = []string{
	"check-in digital",
	"upgrade sujeito a disponibilidade",
}

// 品牌默认值
const (
	brandPrimaryDefault   = "#5B8CFF"
	brandSecondaryDefault = "#0B0D12"
	brandFontDefault      = "Inter"
)

const personaDefault = "luxo"

// ==================== 服务 ====================

// ImagemService 图像 prompt 代理
// prompt/报告生成是纯计算；遥测事件的持久化是 best-effort，不影响响应
type ImagemService struct {
	eventRepo repository.J360EventRepository
	storage   *StorageService
}

// NewImagemService 创建图像代理服务
// eventRepo 和 storage 均可为 nil（测试或未配置时退化为纯计算）
func NewImagemService(eventRepo repository.J360EventRepository, storage *StorageService) *ImagemService {
	return &ImagemService{
		eventRepo: eventRepo,
		storage:   storage,
	}
}

// ExecutarTexto 兼容旧 GET 接口：纯文本输入返回简单确认
func (s *ImagemService) ExecutarTexto(entrada string) *dto.ImagemSimplesResposta {
	log.Printf("[AGENTE IMAGEM] Entrada recebida: %s", entrada)
	return &dto.ImagemSimplesResposta{
		Agente:    "imagem",
		Status:    "ativo",
		Mensagem:  "Imagem da propriedade gerada via IA (modo simples).",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Executar 执行结构化图像 prompt 生成
func (s *ImagemService) Executar(ctx context.Context, entrada *dto.ImagemEntrada) (any, error) {
	if entrada == nil {
		entrada = &dto.ImagemEntrada{}
	}

	modo, err := ParseModo(entrada.Modo)
	if err != nil {
		return nil, err
	}

	var userPrompt string
	switch modo {
	case ModoEnhance:
		userPrompt = s.tplEnhance(entrada)
	case ModoNft:
		userPrompt = s.tplNft(entrada)
	case ModoFrontend:
		userPrompt = s.tplFrontend(entrada)
	}

	// 横切报告
	complianceReport := s.ScoreCompliance(entrada.Compliance)
	alignmentReport := s.CheckAlignment(entrada.MktContext)

	persona := personaDefault
	if entrada.Preferencias != nil && entrada.Preferencias.Persona != "" {
		persona = entrada.Preferencias.Persona
	}

	event := dto.J360Event{
		Type:        model.J360EventImageGenerate,
		Agent:       "imagem",
		Mode:        string(modo),
		Persona:     persona,
		RiskScore:   complianceReport.RiskScore,
		Flags:       complianceReport.Flags,
		PayloadHash: utils.HashPayload(entrada),
	}

	s.persistirEvento(ctx, event, complianceReport.NecessitaRevisaoHumana)

	now := time.Now().UTC().Format(time.RFC3339)
	prompts := dto.Prompts{System: SystemPrompt, User: userPrompt}

	if entrada.OnlyPrompt {
		return &dto.ImagemPromptResposta{
			Agente:             "imagem",
			Status:             "ok",
			Mensagem:           "Prompts gerados (somente prompt).",
			Prompts:            prompts,
			ComplianceReport:   complianceReport,
			MktAlignmentReport: alignmentReport,
			J360Event:          event,
			Timestamp:          now,
		}, nil
	}

	return &dto.ImagemResposta{
		Agente:   "imagem",
		Status:   "ativo",
		Mensagem: fmt.Sprintf("Manifesto de imagens gerado (modo %s). Integre ao serviço de geração para criar arquivos reais.", modo),
		Conteudo: dto.ImagemConteudo{
			Prompts:            prompts,
			Artefatos:          s.montarArtefatos(modo),
			Meta:               s.montarMeta(entrada),
			ComplianceReport:   complianceReport,
			MktAlignmentReport: alignmentReport,
			J360Event:          event,
		},
		Timestamp: now,
	}, nil
}

// persistirEvento 落遥测日志；失败只打日志，绝不让请求失败
func (s *ImagemService) persistirEvento(ctx context.Context, event dto.J360Event, revisao bool) {
	if s.eventRepo == nil {
		return
	}

	flagsJSON, err := json.Marshal(event.Flags)
	if err != nil {
		flagsJSON = []byte("[]")
	}

	logEntry := &model.J360EventLog{
		EventType:        event.Type,
		Agente:           event.Agent,
		Modo:             event.Mode,
		Persona:          event.Persona,
		RiskScore:        event.RiskScore,
		Flags:            datatypes.JSON(flagsJSON),
		NecessitaRevisao: revisao,
		PayloadHash:      event.PayloadHash,
	}

	if err := s.eventRepo.Create(ctx, logEntry); err != nil {
		log.Printf("[AGENTE IMAGEM] Falha ao registrar j360_event: %v", err)
	}
}

// ==================== Compliance ====================

// ScoreCompliance 计算合规报告
// 评分确定性：基础 0.2，rights 未确认 +0.4，第三方品牌风险 +0.2，封顶 1.0，保留两位小数
// 缺省 disclaimers 与模式无关，始终取标准对
func (s *ImagemService) ScoreCompliance(decl *dto.ComplianceDecl) dto.ComplianceReport {
	if decl == nil {
		decl = &dto.ComplianceDecl{}
	}

	territory := valueOr(decl.Territory, territoryDefault)

	disclaimers := decl.Disclaimers
	if len(disclaimers) == 0 {
		disclaimers = disclaimersDefault
	}

	brandsPolicy := valueOr(decl.ThirdPartyBrands, brandPolicyDefault)

	var flags []string
	if !decl.RightsConfirmed {
		flags = append(flags, FlagRightsNotConfirmed)
	}
	if brandsPolicy != brandPolicyAllowed {
		flags = append(flags, FlagThirdPartyBrandRisk)
	}
	if flags == nil {
		flags = []string{}
	}

	risk := riskBase
	for _, f := range flags {
		switch f {
		case FlagRightsNotConfirmed:
			risk += riskRightsNotConfirmed
		case FlagThirdPartyBrandRisk:
			risk += riskThirdPartyBrand
		}
	}
	risk = math.Min(1.0, risk)
	risk = math.Round(risk*100) / 100

	return dto.ComplianceReport{
		Territory:              territory,
		RiskScore:              risk,
		Flags:                  flags,
		DisclaimersAplicados:   disclaimers,
		DireitosImagemOK:       decl.RightsConfirmed,
		NecessitaRevisaoHumana: risk >= riskHumanReviewMinScore,
	}
}

// ==================== MKT Alignment ====================

// CheckAlignment 校验实际使用的 claims 是否都在 allowlist 内
// claims_validadas = used ∩ allow（排序）；violacoes = used − allow
func (s *ImagemService) CheckAlignment(mktCtx *dto.MktContext) dto.AlignmentReport {
	if mktCtx == nil {
		mktCtx = &dto.MktContext{}
	}

	cta := valueOr(mktCtx.CTA, ctaPadraoDefault)

	allowlist := mktCtx.ClaimsAllowlist
	if len(allowlist) == 0 {
		allowlist = claimsAllowlistDefault
	}
	allow := make(map[string]struct{}, len(allowlist))
	for _, c := range allowlist {
		allow[c] = struct{}{}
	}

	validadas := []string{}
	violacoes := []string{}
	for _, c := range utils.DedupOrdered(utils.SafeList(mktCtx.ClaimsUsed, nil)) {
		if _, ok := allow[c]; ok {
			validadas = append(validadas, c)
		} else {
			violacoes = append(violacoes, c)
		}
	}
	sort.Strings(validadas)

	return dto.AlignmentReport{
		CTAUsada:        cta,
		ClaimsValidadas: validadas,
		Violacoes:       violacoes,
		Keywords:        utils.SafeList(mktCtx.Keywords, nil),
	}
}

// ==================== Prompt 模板 ====================

// tplEnhance 模式 1：marketplace 实拍图增强
func (s *ImagemService) tplEnhance(p *dto.ImagemEntrada) string {
	imovel := p.Imovel
	if imovel == nil {
		imovel = &dto.Imovel{}
	}
	persona := personaDefault
	if p.Preferencias != nil && p.Preferencias.Persona != "" {
		persona = p.Preferencias.Persona
	}
	brand := s.brandOuDefault(p.Brand)

	imagem := p.ImagemURL
	if imagem == "" {
		imagem = valueOr(p.ImagemBase64, "<sem imagem>")
	}
	overlays := strings.Join(utils.SafeList(p.Overlays, nil), ", ")

	comp := s.ScoreCompliance(p.Compliance)
	mkt := s.CheckAlignment(p.MktContext)

	return strings.TrimSpace(fmt.Sprintf(`[TAREFA]
Aprimorar foto para marketplace: %s

[CONTEÚDO]
Imóvel: %s em %s
Amenidades: %s
Extras: %s
Persona/estilo: %s
Identidade: primary=%s, secondary=%s

[SAÍDA VISUAL]
- Correção luz/contraste/cores; horizonte nivelado; realismo.
- Cortes: 1:1 (1080), 4:3 (1600x1200), 16:9 (1920x1080).
- Overlays: %s; QR: %s; contraste WCAG AA.

[JURÍDICO & COMPLIANCE]
Território: %s
Direitos confirmados: %t
Marcas de terceiros: %s
Disclaimers: %s
Checklist: risco (0-1), flags, disclaimers_aplicados, direitos_imagem_ok, necessita_revisao_humana.

[MKT & CTA]
CTA: %s
Allowlist de claims: %s
Keywords: %s
Validar violações.

[J_360 LOG]
Gerar j360_event (type 'image.generate', mode 'enhance', persona '%s').

[ENTREGAS]
- market-1x1.jpg, market-4x3.jpg, market-16x9.jpg
- JSON: artefatos + meta (alt_text, prompt_usado) + compliance_report + mkt_alignment_report + j360_event`,
		imagem,
		valueOr(imovel.Tipo, "<tipo>"), valueOr(imovel.Localizacao, "<local>"),
		strings.Join(utils.SafeList(imovel.Amenidades, nil), ", "),
		strings.Join(utils.SafeList(imovel.Extras, nil), ", "),
		persona,
		brand.Primary, brand.Secondary,
		valueOr(overlays, "nenhum"), valueOr(p.QRUrl, "n/a"),
		comp.Territory,
		comp.DireitosImagemOK,
		valueOr(compBrands(p.Compliance), brandPolicyDefault),
		strings.Join(comp.DisclaimersAplicados, "; "),
		mkt.CTAUsada,
		strings.Join(allowlistOuDefault(p.MktContext), "; "),
		strings.Join(mkt.Keywords, ", "),
		persona,
	))
}

// tplNft 模式 2：NFT 插画
func (s *ImagemService) tplNft(p *dto.ImagemEntrada) string {
	imovel := p.Imovel
	if imovel == nil {
		imovel = &dto.Imovel{}
	}
	persona := personaDefault
	if p.Preferencias != nil && p.Preferencias.Persona != "" {
		persona = p.Preferencias.Persona
	}

	comp := s.ScoreCompliance(p.Compliance)

	// o texto do prompt nft tem o seu próprio par de disclaimers default
	disclaimers := disclaimersNftTemplate
	if p.Compliance != nil && len(p.Compliance.Disclaimers) > 0 {
		disclaimers = p.Compliance.Disclaimers
	}

	cta := "Desbloqueie upgrade exclusivo"
	var keywords []string
	allowlist := []string{"colecionável digital", "acesso verificado on-chain"}
	if p.MktContext != nil {
		if p.MktContext.CTA != "" {
			cta = p.MktContext.CTA
		}
		if len(p.MktContext.ClaimsAllowlist) > 0 {
			allowlist = p.MktContext.ClaimsAllowlist
		}
		keywords = p.MktContext.Keywords
	}

	return strings.TrimSpace(fmt.Sprintf(`[TAREFA]
Arte ilustrativa do NFT (estilo %s) para %s em %s.

[REFERÊNCIA]
Foto: %s

[TEMA]
Estação/tema: %s
Elementos Web3: %s
Persona: %s

[JURÍDICO & COMPLIANCE]
Território: %s
Sem uso de marcas de terceiros; sem pessoas identificáveis.
Disclaimers: %s
Checklist completo.

[MKT & CTA]
CTA: %s
Allowlist: %s
Keywords: %s

[J_360 LOG]
Gerar j360_event (image.generate, mode 'nft').

[SAÍDA]
- PNG com transparência (1200x1200) + hero (1600x1200)
- JSON: artefatos, meta, compliance_report, mkt_alignment_report, j360_event`,
		valueOr(p.Estilo, "3D/flat moderno"),
		valueOr(imovel.Tipo, "<tipo>"), valueOr(imovel.Localizacao, "<local>"),
		valueOr(p.ImagemReferencia, "sem"),
		valueOr(p.Tema, "verão"),
		valueOr(p.Web3, "token/grade sutil"),
		persona,
		comp.Territory,
		strings.Join(disclaimers, "; "),
		cta,
		strings.Join(allowlist, "; "),
		strings.Join(utils.SafeList(keywords, nil), ", "),
	))
}

// tplFrontend 模式 3：前端素材
func (s *ImagemService) tplFrontend(p *dto.ImagemEntrada) string {
	brand := s.brandOuDefault(p.Brand)
	comp := s.ScoreCompliance(p.Compliance)

	cta := "Reserve via NFT"
	var keywords []string
	allowlist := []string{"check-in digital"}
	if p.MktContext != nil {
		if p.MktContext.CTA != "" {
			cta = p.MktContext.CTA
		}
		if len(p.MktContext.ClaimsAllowlist) > 0 {
			allowlist = p.MktContext.ClaimsAllowlist
		}
		keywords = p.MktContext.Keywords
	}

	secoes := p.Secoes
	if len(secoes) == 0 {
		secoes = []string{"home", "tutoriais", "relatorios"}
	}

	return strings.TrimSpace(fmt.Sprintf(`[TAREFA]
Assets frontend: %s.

[CONTEÚDO]
Mensagem: %s
Seções: %s
Identidade: primary=%s, secondary=%s, font=%s

[JURÍDICO & COMPLIANCE]
Evitar marcas de terceiros e dados pessoais; incluir disclaimers quando houver preço/condições.
Território: %s
Checklist completo (risco/flags/direitos/disclaimers).

[MKT & CTA]
CTA: %s
Allowlist de claims: %s
Keywords: %s

[J_360 LOG]
Gerar j360_event (image.generate, mode 'frontend').

[SAÍDA]
- Banner hero desktop (1920x820) e mobile (1080x1320), ícones SVG, mockup app
- JSON com artefatos, meta, compliance_report, mkt_alignment_report, j360_event`,
		valueOr(p.Alvos, "banner_hero, icones_menu, mockup_app"),
		valueOr(p.MensagemChave, "Reserve sua diária via NFT"),
		strings.Join(secoes, ", "),
		brand.Primary, brand.Secondary, brand.Font,
		comp.Territory,
		cta,
		strings.Join(allowlist, "; "),
		strings.Join(utils.SafeList(keywords, nil), ", "),
	))
}

// ==================== 产物清单 ====================

// montarArtefatos 按模式生成模拟产物清单
// 配置了存储服务时给出公开 URL，否则保留本地导出路径
func (s *ImagemService) montarArtefatos(modo Modo) []dto.Artefato {
	var artefatos []dto.Artefato

	switch modo {
	case ModoEnhance:
		artefatos = []dto.Artefato{
			{Role: "marketplace", Name: "market-1x1.jpg", Format: "jpg", Width: 1080, Height: 1080},
			{Role: "marketplace", Name: "market-4x3.jpg", Format: "jpg", Width: 1600, Height: 1200},
			{Role: "marketplace", Name: "market-16x9.jpg", Format: "jpg", Width: 1920, Height: 1080},
		}
	case ModoNft:
		artefatos = []dto.Artefato{
			{Role: "nft", Name: "nft-square.png", Format: "png", Width: 1200, Height: 1200},
			{Role: "nft", Name: "nft-hero.png", Format: "png", Width: 1600, Height: 1200},
		}
	case ModoFrontend:
		artefatos = []dto.Artefato{
			{Role: "banner_desktop", Name: "hero-1920x820.jpg", Format: "jpg", Width: 1920, Height: 820},
			{Role: "banner_mobile", Name: "hero-1080x1320.jpg", Format: "jpg", Width: 1080, Height: 1320},
			{Role: "icon_svg", Name: "icon-emitir-nft.svg", Format: "svg", Width: 128, Height: 128},
		}
	}

	for i := range artefatos {
		if s.storage != nil {
			artefatos[i].PathOrURL = s.storage.PublicURL(artefatos[i].Name)
		} else {
			artefatos[i].PathOrURL = "data/exports/" + artefatos[i].Name
		}
	}
	return artefatos
}

func (s *ImagemService) montarMeta(p *dto.ImagemEntrada) dto.ImagemMeta {
	return dto.ImagemMeta{
		AltText: valueOr(p.AltText, "Imagem otimizada para NFTDiarias"),
		Brand:   s.brandOuDefault(p.Brand),
		Notes:   []string{"wcag-aa"},
	}
}

func (s *ImagemService) brandOuDefault(b *dto.Brand) dto.Brand {
	out := dto.Brand{
		Primary:   brandPrimaryDefault,
		Secondary: brandSecondaryDefault,
		Font:      brandFontDefault,
	}
	if b != nil {
		if b.Primary != "" {
			out.Primary = b.Primary
		}
		if b.Secondary != "" {
			out.Secondary = b.Secondary
		}
		if b.Font != "" {
			out.Font = b.Font
		}
	}
	return out
}

// ==================== 内部工具 ====================

func compBrands(decl *dto.ComplianceDecl) string {
	if decl == nil {
		return ""
	}
	return decl.ThirdPartyBrands
}

func allowlistOuDefault(mktCtx *dto.MktContext) []string {
	if mktCtx != nil && len(mktCtx.ClaimsAllowlist) > 0 {
		return mktCtx.ClaimsAllowlist
	}
	return claimsAllowlistDefault
}
