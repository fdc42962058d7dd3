package service

import (
	"fmt"
	"strings"
	"time"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/pkg/utils"
)

// ==================== 常量表 ====================

// 画像 -> 标签静态表（只读，无需单例）
var personaHashtags = map[string][]string{
	"luxo":          {"#viagemdeluxo", "#hospedagempremium"},
	"investidor":    {"#nft", "#tokenizacao", "#web3"},
	"familia":       {"#viagememfamilia", "#hospedagemsegura"},
	"executivo":     {"#workcation", "#viagemdenegocios"},
	"internacional": {"#travel", "#vacation"},
}

// 默认标签，任何画像都会追加
var defaultHashtags = []string{"#turismo", "#hospedagem", "#experiencias"}

// 市场标签固定基底
var baseTagsMercado = []string{"NFT", "Turismo", "Hospedagem", "Blockchain"}

// 渠道常量（preferencias.canais_alvo 的取值）
const (
	CanalSocialShort  = "social_short"
	CanalProfessional = "professional"
	CanalSearchAds    = "search_ads"
)

// 描述不足 100 词时的固定补充段落
const descricaoComplemento = "Reserve com segurança, simplifique o check-in com QR on-chain e desfrute de uma jornada sem atritos. " +
	"NFTs de diárias permitem flexibilidade de transferência (quando permitido), benefícios de upgrade e acesso a experiências selecionadas. " +
	"Nossa curadoria prioriza conforto, localização estratégica e conveniência digital para tornar sua estadia memorável."

const descricaoFillerFrase = "Vagas limitadas para as melhores datas."

const minPalavrasDescricao = 100

// CTA 默认值
const ctaPadraoDefault = "Garanta sua diária NFT"

// ==================== 服务 ====================

// MktService 营销文案代理
// 纯计算，无状态，无 I/O；同一入参永远产出同一文案
type MktService struct{}

// NewMktService 创建营销文案服务
func NewMktService() *MktService {
	return &MktService{}
}

// ExecutarTexto 兼容旧 GET 接口：纯文本 brief
func (s *MktService) ExecutarTexto(entrada string) any {
	return s.Executar(&dto.MktEntrada{Brief: entrada})
}

// Executar 执行营销文案生成
// 无 imovel -> 简单模式；有 imovel -> 结构化模式
// only_json: true 时只返回 MktJSON 本体
func (s *MktService) Executar(entrada *dto.MktEntrada) any {
	if entrada == nil {
		entrada = &dto.MktEntrada{}
	}

	brief := entrada.Brief
	if brief == "" {
		brief = entrada.Texto
	}
	if brief == "" {
		brief = "copy padrão"
	}

	publico := valueOr(entrada.Publico, "geral")
	tom := valueOr(entrada.Tom, "informativo")
	idioma := valueOr(entrada.Idioma, "pt-BR")
	ctaPadrao := valueOr(entrada.CTA, ctaPadraoDefault)

	if entrada.Imovel == nil {
		return s.executarSimples(entrada, brief, publico, tom, idioma, ctaPadrao)
	}

	return s.executarAvancado(entrada, brief, publico, tom, idioma, ctaPadrao)
}

// ==================== 简单模式 ====================

func (s *MktService) executarSimples(entrada *dto.MktEntrada, brief, publico, tom, idioma, ctaPadrao string) any {
	headline := "Transforme suas diárias com NFTs e check-in digital."
	if tom == "convincente" {
		headline = "Lotação alta com menos atrito: emita NFTs de diárias."
	}

	corpo := fmt.Sprintf("%s\n\n%s.\nPúblico: %s. Idioma: %s. \nChamada: %s.",
		headline, capitalize(strings.TrimSpace(brief)), publico, idioma, ctaPadrao)

	if entrada.OnlyJSON {
		return &dto.MktJSON{
			TituloNFT:      utils.LimitWords(headline, 10),
			DescricaoLonga: corpo,
			HashtagsSocial: []string{"#nft", "#hospedagem", "#turismo"},
			TagsMercado:    []string{"NFT", "Hospedagem", "Turismo"},
		}
	}

	return &dto.MktResposta{
		Agente:   "mkt",
		Status:   "ativo",
		Mensagem: "Peça gerada (modo simples).",
		Conteudo: dto.MktConteudo{
			Headline: headline,
			Corpo:    corpo,
			Publico:  publico,
			Tom:      tom,
			Idioma:   idioma,
			CTA:      ctaPadrao,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ==================== 结构化模式 ====================

func (s *MktService) executarAvancado(entrada *dto.MktEntrada, brief, publico, tom, idioma, ctaPadrao string) any {
	imovel := entrada.Imovel
	contexto := entrada.ContextoMercado
	if contexto == nil {
		contexto = &dto.ContextoMercado{}
	}
	prefs := entrada.Preferencias
	if prefs == nil {
		prefs = &dto.Preferencias{}
	}
	promocao := entrada.Promocao
	if promocao == nil {
		promocao = &dto.Promocao{}
	}

	persona := strings.ToLower(prefs.Persona)
	cidade := contexto.Cidade
	if cidade == "" {
		cidade = imovel.Localizacao
	}

	titulo := s.montarTitulo(imovel, persona)
	descricao := s.montarDescricaoLonga(imovel, contexto, prefs, promocao, ctaPadrao)
	hashtags := s.montarHashtags(cidade, persona)
	tagsMercado := s.montarTagsMercado(imovel)

	var seo *dto.SEOBlock
	meta := utils.TruncateForMeta(descricao, 160)
	var primarias, secundarias []string
	if prefs.SEO != nil {
		primarias = utils.SafeList(prefs.SEO.KeywordsPrimarias, nil)
		secundarias = utils.SafeList(prefs.SEO.KeywordsSecundarias, nil)
	}
	// SEO 块：任一字段非空才输出
	if len(primarias) > 0 || len(secundarias) > 0 || meta != "" {
		seo = &dto.SEOBlock{
			KeywordsPrimarias:   utils.SafeList(primarias, nil),
			KeywordsSecundarias: utils.SafeList(secundarias, nil),
			MetaDescription:     meta,
		}
	}

	ctaCanal := valueOr(prefs.CTA, ctaPadrao)
	variacoes := s.montarVariacoesPorCanal(titulo, hashtags, prefs, ctaCanal, descricao)

	mktJSON := &dto.MktJSON{
		TituloNFT:         titulo,
		DescricaoLonga:    descricao,
		HashtagsSocial:    hashtags,
		TagsMercado:       tagsMercado,
		SEO:               seo,
		VariacoesPorCanal: variacoes,
		UTM:               prefs.UTMBase,
	}

	if entrada.OnlyJSON {
		return mktJSON
	}

	return &dto.MktResposta{
		Agente:   "mkt",
		Status:   "ativo",
		Mensagem: "Peça gerada com sucesso (modo avançado).",
		Conteudo: dto.MktConteudo{
			Publico: publico,
			Tom:     tom,
			Idioma:  valueOr(prefs.Idioma, idioma),
			CTA:     ctaCanal,
			Brief:   brief,
			MktJSON: mktJSON,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// montarTitulo 组装标题：tipo [em localizacao]，luxo 画像加前缀，限 10 词
func (s *MktService) montarTitulo(imovel *dto.Imovel, persona string) string {
	base := valueOr(imovel.Tipo, "Estadia exclusiva")
	if imovel.Localizacao != "" {
		base = fmt.Sprintf("%s em %s", base, imovel.Localizacao)
	}
	if persona == "luxo" {
		base = "Experiência " + base
	}
	return utils.LimitWords(base, 10)
}

// montarDescricaoLonga 组装长描述
// 块顺序固定：开场（按语言）、市场上下文、amenidades、extras、信任声明、CTA
// 不足 100 词时确定性补足（补充段落 + 有界循环追加固定句）
func (s *MktService) montarDescricaoLonga(imovel *dto.Imovel, contexto *dto.ContextoMercado,
	prefs *dto.Preferencias, promocao *dto.Promocao, ctaPadrao string) string {

	tipo := valueOr(imovel.Tipo, "hospedagem exclusiva")
	amen := strings.Join(utils.SafeList(imovel.Amenidades, nil), ", ")
	extras := strings.Join(utils.SafeList(imovel.Extras, nil), ", ")
	cidade := contexto.Cidade
	if cidade == "" {
		cidade = imovel.Localizacao
	}
	eventos := strings.Join(utils.SafeList(contexto.Eventos, nil), ", ")
	idioma := strings.ToLower(valueOr(prefs.Idioma, "pt"))
	cta := valueOr(prefs.CTA, ctaPadrao)

	var blocos []string

	// 开场：storytelling + SEO
	abertura := fmt.Sprintf("Descubra uma experiência %s", tipo)
	if cidade != "" {
		abertura = fmt.Sprintf("Descubra uma experiência %s em %s", tipo, cidade)
	}
	switch {
	case strings.HasPrefix(idioma, "pt"):
		blocos = append(blocos, abertura+" — onde exclusividade encontra tecnologia Web3. "+
			"Com NFTs de diárias, você garante acesso verificado on-chain, facilidade de transferência e possibilidade de vantagens exclusivas.")
	case strings.HasPrefix(idioma, "en"):
		blocos = append(blocos, abertura+" — where exclusivity meets Web3. NFT-stays provide on-chain verified access, easy transfers, and exclusive perks.")
	default:
		// 非 pt/en 前缀一律走西语分支
		blocos = append(blocos, abertura+" — donde la exclusividad se une al Web3. Las estancias NFT aseguran acceso verificado on-chain, transferencias fáciles y beneficios exclusivos.")
	}

	// 市场上下文（可选，仅输出存在的字段）
	var contextoTxt []string
	if contexto.Periodo != "" {
		contextoTxt = append(contextoTxt, "Período: "+contexto.Periodo)
	}
	if contexto.Demanda != nil {
		if contexto.Demanda.Indice != nil {
			contextoTxt = append(contextoTxt, fmt.Sprintf("Índice de demanda: %.2f", *contexto.Demanda.Indice))
		} else if contexto.Demanda.Texto != "" {
			contextoTxt = append(contextoTxt, "Demanda prevista: "+contexto.Demanda.Texto)
		}
	}
	if eventos != "" {
		contextoTxt = append(contextoTxt, "Eventos: "+eventos)
	}
	if contexto.Clima != "" {
		contextoTxt = append(contextoTxt, "Clima previsto: "+contexto.Clima)
	}
	if contexto.PrecoMedioCompetidores != nil {
		contextoTxt = append(contextoTxt, fmt.Sprintf("Preço médio dos concorrentes: R$ %.2f", *contexto.PrecoMedioCompetidores))
	}
	if len(contextoTxt) > 0 {
		blocos = append(blocos, strings.Join(contextoTxt, " | "))
	}

	// Amenidades e extras
	if amen != "" {
		blocos = append(blocos, "Amenidades: "+amen+".")
	}
	if extras != "" {
		blocos = append(blocos, "Extras do pacote: "+extras+".")
	}

	// 信任声明（固定文案，不承诺收益）
	blocos = append(blocos, "Transparência e confiança: contratos e registros on-chain, com regras claras de uso e cancelamento.")

	// CTA + 促销条件
	if promocao.Ativa {
		detalhes := valueOr(promocao.Detalhes, "Condições especiais por tempo limitado.")
		blocos = append(blocos, cta+". "+detalhes)
	} else {
		blocos = append(blocos, cta+".")
	}

	texto := strings.Join(blocos, "\n\n")

	// 保底 >= 100 词；循环有界，每轮至少加 6 词，不可能死循环
	if utils.CountWords(texto) < minPalavrasDescricao {
		complemento := " " + descricaoComplemento + " "
		for i := 0; utils.CountWords(texto+complemento) < minPalavrasDescricao && i < 20; i++ {
			complemento += descricaoFillerFrase + " "
		}
		texto += complemento
	}
	return strings.TrimSpace(texto)
}

// montarHashtags 画像标签 + 默认标签 + 城市标签，去重，限 10 个
func (s *MktService) montarHashtags(cidade, persona string) []string {
	base := append([]string{}, personaHashtags[persona]...)
	base = append(base, defaultHashtags...)
	if cidade != "" {
		base = append(base, "#"+strings.ReplaceAll(strings.ToLower(cidade), " ", ""))
	}
	out := utils.DedupOrdered(base)
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// montarTagsMercado 固定基底 + tipo + amenidades，限 10 个
func (s *MktService) montarTagsMercado(imovel *dto.Imovel) []string {
	out := append([]string{}, baseTagsMercado...)
	if imovel.Tipo != "" {
		out = append(out, imovel.Tipo)
	}
	for _, a := range utils.SafeList(imovel.Amenidades, nil) {
		if len(out) >= 10 {
			break
		}
		out = append(out, a)
	}
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// montarVariacoesPorCanal 按请求的渠道生成变体，未请求的渠道不输出
func (s *MktService) montarVariacoesPorCanal(titulo string, hashtags []string,
	prefs *dto.Preferencias, cta, descricao string) map[string]dto.CanalVariacao {

	canais := make(map[string]struct{})
	for _, c := range utils.SafeList(prefs.CanaisAlvo, nil) {
		canais[c] = struct{}{}
	}

	out := make(map[string]dto.CanalVariacao)

	if _, ok := canais[CanalSocialShort]; ok {
		primeiraLinha := fmt.Sprintf("%s. %s", titulo, cta)
		tags := hashtags
		if len(tags) > 8 {
			tags = tags[:8]
		}
		out[CanalSocialShort] = dto.CanalVariacao{
			Post: truncateChars(primeiraLinha, 150) + " " + strings.Join(tags, " "),
		}
	}

	if _, ok := canais[CanalProfessional]; ok {
		out[CanalProfessional] = dto.CanalVariacao{
			Post: truncateChars(descricao, 1500),
		}
	}

	if _, ok := canais[CanalSearchAds]; ok {
		headlines := []string{
			utils.LimitWords(titulo, 5),
			"Reserva NFT Verificada",
			"Upgrade Exclusivo",
			"Check-in Digital",
			"Experiência Web3",
			"Hospedagem Premium",
		}
		if len(headlines) > 8 {
			headlines = headlines[:8]
		}
		descriptions := []string{
			"Garanta sua diária NFT com check-in digital e vantagens exclusivas.",
			"Condições por tempo limitado. Reserve agora e desbloqueie upgrades.",
		}
		out[CanalSearchAds] = dto.CanalVariacao{
			Headlines:    headlines,
			Descriptions: descriptions,
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// ==================== 内部工具 ====================

func valueOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// truncateChars 按字符截断（rune 安全）
func truncateChars(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// capitalize 首字母大写（rune 安全）
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
