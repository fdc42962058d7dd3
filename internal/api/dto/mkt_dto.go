package dto

import (
	"encoding/json"
	"fmt"
)

// ==================== 请求 DTO ====================

// MktEntrada 营销文案代理入参
// 两种用法：仅 brief（兼容旧 string 模式）；或携带结构化 imovel/contexto/preferencias
type MktEntrada struct {
	Brief   string `json:"brief"`
	Texto   string `json:"texto"`
	Publico string `json:"publico"`
	Tom     string `json:"tom"`
	Idioma  string `json:"idioma"`
	CTA     string `json:"cta"`

	// only_json: true 时只返回最终 mkt JSON，不带信封
	OnlyJSON bool `json:"only_json"`

	Imovel          *Imovel          `json:"imovel"`
	ContextoMercado *ContextoMercado `json:"contexto_mercado"`
	Preferencias    *Preferencias    `json:"preferencias"`
	Promocao        *Promocao        `json:"promocao"`
}

// Imovel 房源描述
type Imovel struct {
	Tipo        string   `json:"tipo"`
	Localizacao string   `json:"localizacao"`
	Amenidades  []string `json:"amenidades"`
	Extras      []string `json:"extras"`
}

// ContextoMercado 市场上下文
type ContextoMercado struct {
	Cidade                 string   `json:"cidade"`
	Periodo                string   `json:"periodo"`
	Demanda                *Demanda `json:"demanda"`
	Eventos                []string `json:"eventos"`
	Clima                  string   `json:"clima"`
	PrecoMedioCompetidores *float64 `json:"preco_medio_competidores"`
}

// Demanda 需求字段，兼容字符串（"alta"）和数值（0.85）两种写法
type Demanda struct {
	Texto  string
	Indice *float64
}

func (d *Demanda) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Texto = s
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		d.Indice = &f
		return nil
	}

	return fmt.Errorf("demanda deve ser string ou número")
}

func (d Demanda) MarshalJSON() ([]byte, error) {
	if d.Indice != nil {
		return json.Marshal(*d.Indice)
	}
	return json.Marshal(d.Texto)
}

// Preferencias 内容偏好
type Preferencias struct {
	Idioma     string    `json:"idioma"`
	Persona    string    `json:"persona"`
	SEO        *SEOPrefs `json:"seo"`
	CanaisAlvo []string  `json:"canais_alvo"`
	ABVariants int       `json:"ab_variants"`
	CTA        string    `json:"cta"`
	UTMBase    string    `json:"utm_base"`
}

// SEOPrefs SEO 关键词偏好
type SEOPrefs struct {
	KeywordsPrimarias   []string `json:"keywords_primarias"`
	KeywordsSecundarias []string `json:"keywords_secundarias"`
}

// Promocao 促销信息
type Promocao struct {
	Ativa    bool   `json:"ativa"`
	Detalhes string `json:"detalhes"`
}

// ==================== 响应 DTO ====================

// MktJSON 结构化营销内容（only_json 模式的完整响应体）
type MktJSON struct {
	TituloNFT         string                   `json:"titulo_nft"`
	DescricaoLonga    string                   `json:"descricao_longa"`
	HashtagsSocial    []string                 `json:"hashtags_social"`
	TagsMercado       []string                 `json:"tags_mercado"`
	SEO               *SEOBlock                `json:"seo,omitempty"`
	VariacoesPorCanal map[string]CanalVariacao `json:"variacoes_por_canal,omitempty"`
	UTM               string                   `json:"utm,omitempty"`
}

// SEOBlock 输出的 SEO 块
type SEOBlock struct {
	KeywordsPrimarias   []string `json:"keywords_primarias"`
	KeywordsSecundarias []string `json:"keywords_secundarias"`
	MetaDescription     string   `json:"meta_description"`
}

// CanalVariacao 单渠道内容变体
// social_short / professional 使用 Post；search_ads 使用 Headlines + Descriptions
type CanalVariacao struct {
	Post         string   `json:"post,omitempty"`
	Headlines    []string `json:"headlines,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// MktResposta 带信封的代理响应
type MktResposta struct {
	Agente    string      `json:"agente"`
	Status    string      `json:"status"`
	Mensagem  string      `json:"mensagem"`
	Conteudo  MktConteudo `json:"conteudo"`
	Timestamp string      `json:"timestamp"`
}

// MktConteudo 响应内容体，简单模式与高级模式共用
type MktConteudo struct {
	Headline string   `json:"headline,omitempty"`
	Corpo    string   `json:"corpo,omitempty"`
	Publico  string   `json:"publico"`
	Tom      string   `json:"tom"`
	Idioma   string   `json:"idioma"`
	CTA      string   `json:"cta"`
	Brief    string   `json:"brief,omitempty"`
	MktJSON  *MktJSON `json:"mkt_json,omitempty"`
}
