package service

import (
	"strings"
	"testing"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/pkg/utils"
)

func avancadoEntrada() *dto.MktEntrada {
	preco := 850.0
	return &dto.MktEntrada{
		OnlyJSON: true,
		Imovel: &dto.Imovel{
			Tipo:        "Casa de praia premium",
			Localizacao: "Ilhabela",
			Amenidades:  []string{"piscina", "wi-fi", "vista mar"},
			Extras:      []string{"late check-out"},
		},
		ContextoMercado: &dto.ContextoMercado{
			Cidade:                 "Ilhabela",
			Periodo:                "reveillon",
			Demanda:                &dto.Demanda{Texto: "alta"},
			Eventos:                []string{"festival de vela"},
			PrecoMedioCompetidores: &preco,
		},
		Preferencias: &dto.Preferencias{
			Idioma:  "pt-BR",
			Persona: "luxo",
			SEO: &dto.SEOPrefs{
				KeywordsPrimarias: []string{"casa de praia ilhabela"},
			},
			CanaisAlvo: []string{CanalSocialShort, CanalSearchAds},
		},
		Promocao: &dto.Promocao{Ativa: true, Detalhes: "10% off até sexta."},
	}
}

func mktJSONDe(t *testing.T, res any) *dto.MktJSON {
	t.Helper()
	out, ok := res.(*dto.MktJSON)
	if !ok {
		t.Fatalf("esperava *dto.MktJSON, recebi %T", res)
	}
	return out
}

func TestMktTitulo(t *testing.T) {
	svc := NewMktService()

	t.Run("标题不超过10词且带luxo前缀", func(t *testing.T) {
		out := mktJSONDe(t, svc.Executar(avancadoEntrada()))

		if !strings.HasPrefix(out.TituloNFT, "Experiência ") {
			t.Errorf("persona luxo deveria prefixar o título, got %q", out.TituloNFT)
		}
		if n := utils.CountWords(out.TituloNFT); n > 10 {
			t.Errorf("título com %d palavras, limite é 10: %q", n, out.TituloNFT)
		}
	})

	t.Run("超长tipo仍被截断到10词", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.Imovel.Tipo = "Casa de praia premium com vista panorâmica para o arquipélago inteiro e deck privativo"
		out := mktJSONDe(t, svc.Executar(entrada))

		if n := utils.CountWords(out.TituloNFT); n > 10 {
			t.Errorf("título com %d palavras: %q", n, out.TituloNFT)
		}
	})

	t.Run("sem画像不加前缀", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.Preferencias.Persona = "investidor"
		out := mktJSONDe(t, svc.Executar(entrada))

		if strings.HasPrefix(out.TituloNFT, "Experiência ") {
			t.Errorf("persona investidor não deveria prefixar: %q", out.TituloNFT)
		}
	})
}

func TestMktDescricaoLonga(t *testing.T) {
	svc := NewMktService()

	t.Run("最小入参也保证100词", func(t *testing.T) {
		entrada := &dto.MktEntrada{
			OnlyJSON: true,
			Imovel:   &dto.Imovel{Tipo: "Loft"},
		}
		out := mktJSONDe(t, svc.Executar(entrada))

		if n := utils.CountWords(out.DescricaoLonga); n < 100 {
			t.Errorf("descrição com %d palavras, mínimo é 100", n)
		}
	})

	t.Run("葡语开场与市场上下文", func(t *testing.T) {
		out := mktJSONDe(t, svc.Executar(avancadoEntrada()))

		if !strings.Contains(out.DescricaoLonga, "Descubra uma experiência") {
			t.Errorf("faltou abertura pt: %q", out.DescricaoLonga[:80])
		}
		if !strings.Contains(out.DescricaoLonga, "Período: reveillon") {
			t.Error("faltou o bloco de período")
		}
		if !strings.Contains(out.DescricaoLonga, "Preço médio dos concorrentes: R$ 850.00") {
			t.Error("faltou o preço dos concorrentes formatado")
		}
		if !strings.Contains(out.DescricaoLonga, "10% off até sexta.") {
			t.Error("faltou o detalhe da promoção")
		}
	})

	t.Run("英语开场", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.Preferencias.Idioma = "en-US"
		out := mktJSONDe(t, svc.Executar(entrada))

		if !strings.Contains(out.DescricaoLonga, "where exclusivity meets Web3") {
			t.Error("idioma en deveria usar abertura em inglês")
		}
	})

	t.Run("未知语言走西语分支", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.Preferencias.Idioma = "fr-FR"
		out := mktJSONDe(t, svc.Executar(entrada))

		if !strings.Contains(out.DescricaoLonga, "donde la exclusividad se une al Web3") {
			t.Error("idioma desconhecido deveria cair na abertura es")
		}
	})
}

func TestMktHashtags(t *testing.T) {
	svc := NewMktService()

	t.Run("城市标签小写去空格", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.ContextoMercado.Cidade = "São Paulo"
		out := mktJSONDe(t, svc.Executar(entrada))

		achou := false
		for _, h := range out.HashtagsSocial {
			if h == "#sãopaulo" {
				achou = true
			}
		}
		if !achou {
			t.Errorf("faltou a hashtag da cidade: %v", out.HashtagsSocial)
		}
	})

	t.Run("未知画像只有默认标签并且去重限10", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.Preferencias.Persona = "mochileiro"
		out := mktJSONDe(t, svc.Executar(entrada))

		if len(out.HashtagsSocial) > 10 {
			t.Errorf("mais de 10 hashtags: %v", out.HashtagsSocial)
		}
		vistos := map[string]bool{}
		for _, h := range out.HashtagsSocial {
			if vistos[h] {
				t.Errorf("hashtag duplicada: %s", h)
			}
			vistos[h] = true
		}
	})

	t.Run("市场标签含固定基底", func(t *testing.T) {
		out := mktJSONDe(t, svc.Executar(avancadoEntrada()))
		for _, base := range []string{"NFT", "Turismo", "Hospedagem", "Blockchain"} {
			achou := false
			for _, tag := range out.TagsMercado {
				if tag == base {
					achou = true
				}
			}
			if !achou {
				t.Errorf("faltou a tag base %q em %v", base, out.TagsMercado)
			}
		}
		if len(out.TagsMercado) > 10 {
			t.Errorf("mais de 10 tags: %v", out.TagsMercado)
		}
	})
}

func TestMktVariacoesPorCanal(t *testing.T) {
	svc := NewMktService()

	t.Run("只生成请求的渠道", func(t *testing.T) {
		out := mktJSONDe(t, svc.Executar(avancadoEntrada()))

		if _, ok := out.VariacoesPorCanal[CanalSocialShort]; !ok {
			t.Error("faltou social_short")
		}
		if _, ok := out.VariacoesPorCanal[CanalSearchAds]; !ok {
			t.Error("faltou search_ads")
		}
		if _, ok := out.VariacoesPorCanal[CanalProfessional]; ok {
			t.Error("professional não foi pedido, não deveria existir")
		}
	})

	t.Run("未请求渠道时省略字段", func(t *testing.T) {
		entrada := avancadoEntrada()
		entrada.Preferencias.CanaisAlvo = nil
		out := mktJSONDe(t, svc.Executar(entrada))

		if out.VariacoesPorCanal != nil {
			t.Errorf("sem canais_alvo, variações deveriam ser nil: %v", out.VariacoesPorCanal)
		}
	})

	t.Run("search_ads结构", func(t *testing.T) {
		out := mktJSONDe(t, svc.Executar(avancadoEntrada()))
		ads := out.VariacoesPorCanal[CanalSearchAds]

		if len(ads.Headlines) == 0 || len(ads.Headlines) > 8 {
			t.Errorf("headlines fora do esperado: %v", ads.Headlines)
		}
		if len(ads.Descriptions) != 2 {
			t.Errorf("esperava 2 descriptions, got %v", ads.Descriptions)
		}
		if ads.Post != "" {
			t.Error("search_ads não usa campo post")
		}
	})
}

func TestMktSEO(t *testing.T) {
	svc := NewMktService()

	out := mktJSONDe(t, svc.Executar(avancadoEntrada()))
	if out.SEO == nil {
		t.Fatal("bloco SEO deveria existir")
	}
	if n := len([]rune(out.SEO.MetaDescription)); n > 160 {
		t.Errorf("meta_description com %d chars, limite é 160", n)
	}
	if out.SEO.KeywordsPrimarias[0] != "casa de praia ilhabela" {
		t.Errorf("keywords primárias erradas: %v", out.SEO.KeywordsPrimarias)
	}
}

func TestMktModoSimples(t *testing.T) {
	svc := NewMktService()

	t.Run("legacy字符串入参", func(t *testing.T) {
		res := svc.ExecutarTexto("promover loft em Curitiba")
		resp, ok := res.(*dto.MktResposta)
		if !ok {
			t.Fatalf("esperava *dto.MktResposta, recebi %T", res)
		}
		if resp.Agente != "mkt" || resp.Status != "ativo" {
			t.Errorf("envelope errado: %+v", resp)
		}
		if !strings.Contains(resp.Conteudo.Corpo, "Promover loft em Curitiba") {
			t.Errorf("corpo deveria ecoar o brief capitalizado: %q", resp.Conteudo.Corpo)
		}
	})

	t.Run("tom convincente troca headline", func(t *testing.T) {
		res := svc.Executar(&dto.MktEntrada{Brief: "x", Tom: "convincente"})
		resp := res.(*dto.MktResposta)
		if !strings.Contains(resp.Conteudo.Headline, "Lotação alta") {
			t.Errorf("headline não mudou com tom convincente: %q", resp.Conteudo.Headline)
		}
	})

	t.Run("only_json模式返回精简JSON", func(t *testing.T) {
		res := svc.Executar(&dto.MktEntrada{Brief: "x", OnlyJSON: true})
		out := mktJSONDe(t, res)
		if out.TituloNFT == "" || out.DescricaoLonga == "" {
			t.Errorf("JSON simples incompleto: %+v", out)
		}
	})

	t.Run("确定性：同一入参两次产出一致", func(t *testing.T) {
		a := mktJSONDe(t, svc.Executar(avancadoEntrada()))
		b := mktJSONDe(t, svc.Executar(avancadoEntrada()))
		if a.TituloNFT != b.TituloNFT || a.DescricaoLonga != b.DescricaoLonga {
			t.Error("saída deveria ser determinística")
		}
	})
}
