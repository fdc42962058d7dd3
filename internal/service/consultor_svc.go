package service

import (
	"fmt"
	"strings"
	"time"

	"nftdiarias_dev_v1_202608/internal/api/dto"
)

// ==================== 常量 ====================

const consultorPromptBase = `Atue como consultor de mercado para locação por temporada e Web3.
Objetivo: comparar Airbnb/Booking/Vrbo/Dtravel/Staynex vs. NFTDiárias (projeto).
Entregue: tabela comparativa (ticket médio, ocupação, sazonalidade, tipos de imóvel),
sugestões priorizadas, cláusulas contratuais (BR + internacional), e um esboço de
smart contract para reservas/cancelamentos/garantias. Considere KYC/AML (Lei 9.613/98),
LGPD, CDC e Lei do Inquilinato. Proponha usos de IA (precificação dinâmica, recomendação,
fraude, gestão de ocupação).`

var cidadesDefault = []string{"Florianopolis"}

const moedaDefault = "BRL"

// ==================== 服务 ====================

// ConsultorService 市场顾问代理
// 生成平台对比报告、优先级建议、合同条款和 Solidity 草稿
// 城市指标由数据集服务提供，未配置时对应字段保持 null
type ConsultorService struct {
	market *MarketDataService
}

// NewConsultorService 创建顾问服务；market 可为 nil（无数据源模式）
func NewConsultorService(market *MarketDataService) *ConsultorService {
	return &ConsultorService{market: market}
}

// Executar 执行顾问分析
func (s *ConsultorService) Executar(entrada *dto.ConsultorEntrada) *dto.ConsultorResultado {
	if entrada == nil {
		entrada = &dto.ConsultorEntrada{}
	}

	cidades := entrada.Cidades
	if len(cidades) == 0 {
		cidades = cidadesDefault
	}
	moeda := entrada.Moeda
	if moeda == "" {
		moeda = moedaDefault
	}
	incluirContratos := entrada.IncluirContratos == nil || *entrada.IncluirContratos
	incluirSolidity := entrada.IncluirSolidity == nil || *entrada.IncluirSolidity

	var metricas map[string]dto.CityMetrics
	temDadosReais := false
	if s.market != nil && s.market.TemDados() {
		metricas = s.market.GetCityMetrics(cidades)
		for _, m := range metricas {
			if m.TicketMedio != nil || m.OcupacaoMedia != nil {
				temDadosReais = true
				break
			}
		}
	}

	resultado := &dto.ConsultorResultado{
		Agente:              "consultor_mercado",
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		Moeda:               moeda,
		ComparativoMarkdown: montarTabelaComparativa(metricas, cidades),
		Sugestoes:           sugerirMelhorias(),
		PlanoAcao:           planoDeAcao(),
		MetricasCidades:     metricas,
		InsightsPendentes: dto.InsightsPendentes{
			TemDadosReais: temDadosReais,
			Mensagem:      mensagemInsights(temDadosReais),
		},
	}

	if incluirContratos {
		resultado.ContratosTexto = clausulasContratuaisTexto()
	}
	if incluirSolidity {
		resultado.ContratoSolidity = contratoSolidityExemplo()
	}

	return resultado
}

func mensagemInsights(temDados bool) string {
	if temDados {
		return "Métricas calculadas a partir dos datasets configurados (InsideAirbnb)."
	}
	return "Conecte os stubs às fontes (InsideAirbnb/AirDNA/relatórios) para preencher medidas reais."
}

// ==================== 对比表 ====================

// montarTabelaComparativa 生成 Markdown 平台对比表
// Airbnb 行用第一座有数据城市的指标填充；其余平台没有公开数据保持 "-"
func montarTabelaComparativa(metricas map[string]dto.CityMetrics, cidades []string) string {
	airbnb := dto.CityMetrics{Sazonalidade: []string{}, TiposImovel: []string{}}
	for _, c := range cidades {
		if m, ok := metricas[c]; ok && (m.TicketMedio != nil || m.OcupacaoMedia != nil) {
			airbnb = m
			break
		}
	}

	linhas := []string{
		"| Plataforma | Modelo | Ticket Médio | Ocupação Média | Sazonalidade | Tipos de Imóvel | Duração Média |",
		"|-----------:|:------:|-------------:|---------------:|:------------:|:---------------:|:-------------:|",
		fmt.Sprintf("| Airbnb | Web2 | %s | %s | %s | %s | %s |",
			fmtMetrica(airbnb.TicketMedio), fmtMetrica(airbnb.OcupacaoMedia),
			fmtLista(airbnb.Sazonalidade), fmtLista(airbnb.TiposImovel), fmtMetrica(airbnb.DuracaoMedia)),
		"| Booking | Web2 | - | - | - | - | - |",
		"| Vrbo | Web2 | - | - | - | - | - |",
		"| Dtravel | Web3 | - | - | - | - | - |",
		"| Staynex | Web3 | - | - | - | - | - |",
		"| NFTDiárias | Web3 | - | - | - | - | - |",
	}
	return strings.Join(linhas, "\n")
}

func fmtMetrica(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtLista(itens []string) string {
	if len(itens) == 0 {
		return "-"
	}
	return strings.Join(itens, ", ")
}

// ==================== 建议与计划 ====================

func sugerirMelhorias() []dto.Sugestao {
	return []dto.Sugestao{
		{
			Titulo:          "Precificação dinâmica com IA",
			Acao:            "Modelar preço por ocupação-alvo, sazonalidade e competição local.",
			ImpactoEstimado: "+10–25% receita / +5–15% ocupação",
			Complexidade:    "média",
			Dependencias:    []string{"dados históricos", "conector de calendário", "motor de regras/IA"},
		},
		{
			Titulo:          "NFT de Pacote Flex (7/15/30 diárias)",
			Acao:            "Emitir NFTs com direito a X diárias flexíveis/ano, com janela de agendamento.",
			ImpactoEstimado: "+8–20% receita recorrente",
			Complexidade:    "média",
			Dependencias:    []string{"regra de queima/uso parcial", "UI de calendário", "política de remarcação"},
		},
		{
			Titulo:          "Programa de fidelidade tokenizado",
			Acao:            "Pontos on-chain + tiers (NFTD staking) para desconto e upgrades.",
			ImpactoEstimado: "+5–12% LTV",
			Complexidade:    "média",
			Dependencias:    []string{"token ERC-20", "regras de acúmulo/resgate"},
		},
		{
			Titulo:          "Integração Web2 ↔ Web3",
			Acao:            "Bridge com iCal/Booking.com/VRBO para sincronizar calendário e inventário.",
			ImpactoEstimado: "reduz overbooking e aumenta alcance",
			Complexidade:    "média/alta",
			Dependencias:    []string{"conectores APIs/ICS", "motor de conflito"},
		},
		{
			Titulo:          "Detecção de fraude e chargeback com IA",
			Acao:            "Score de risco por carteira/dispositivo, padrões de reserva e geolocalização.",
			ImpactoEstimado: "redução de perdas operacionais",
			Complexidade:    "média",
			Dependencias:    []string{"feature store", "modelo de risco", "webhooks de pagamento"},
		},
	}
}

func planoDeAcao() []dto.PlanoAcaoItem {
	return []dto.PlanoAcaoItem{
		{Prazo: "curto (0-30d)", Itens: []string{
			"Conectar InsideAirbnb e datasets públicos (ETL simples).",
			"Definir política de cancelamento padrão (Flex/Moderada/Rígida) e refletir no NFT.",
			"Prototipar precificação dinâmica (baseline por cidade/temporada).",
		}},
		{Prazo: "médio (31-90d)", Itens: []string{
			"Bridge Web2 (iCal/ICS) ↔ NFTDiárias para evitar overbooking.",
			"Lançar NFT de pacote flex (7/15/30 diárias).",
			"Piloto de IA de recomendação (wallet + perfil).",
		}},
		{Prazo: "longo (90-180d)", Itens: []string{
			"IA antifraude produtiva (score + bloqueio dinâmico).",
			"Governança/DAO para regras de fidelidade e upgrades.",
			"Expansão internacional com compliance local.",
		}},
	}
}

// ==================== 合同文本 ====================

func clausulasContratuaisTexto() string {
	return "CLÁUSULAS-BASE – LOCAÇÃO TEMPORÁRIA TOKENIZADA (BR)\n" +
		"1) Objeto: cessão de uso do imóvel por período determinado, representado por NFT.\n" +
		"2) Identificação e KYC/AML: locador e locatário submetem documentos para verificação (Lei 9.613/98).\n" +
		"3) Política de Cancelamento: Flexível/Moderada/Rígida (parametrizável no NFT/contrato).\n" +
		"4) Regras do Imóvel: silêncio, pets, fumantes, ocupação máxima, check-in/out, caução.\n" +
		"5) LGPD: tratamento de dados pessoais limitado à execução do contrato e obrigações legais.\n" +
		"6) Garantias e Caução: bloqueio/garantia on-chain/off-chain conforme regras.\n" +
		"7) Responsabilidades: danos, multas, mau uso, limpeza.\n" +
		"8) Resolução de Conflitos: mediação/arbitragem; foro supletivo.\n" +
		"9) Tributação: observância de ISS/IR/tributos, emissão de NFS-e quando aplicável.\n"
}

func contratoSolidityExemplo() string {
	return `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.20;

import "@openzeppelin/contracts/token/ERC721/extensions/ERC721URIStorage.sol";
import "@openzeppelin/contracts/access/Ownable.sol";

/**
 * @title LocacaoNFT
 * @dev Exemplo educacional – ajustar lógica de janelas, remarcação e caução.
 */
contract LocacaoNFT is ERC721URIStorage, Ownable {
    struct Reserva {
        uint256 tokenId;
        address hospede;
        uint64 checkIn;   // epoch
        uint64 checkOut;  // epoch
        uint256 caucao;   // em wei
        uint8 politicaCancelamento; // 0 flex, 1 moderada, 2 rigida
        bool ativa;
    }

    uint256 public tokenCount;
    mapping(uint256 => Reserva) public reservas;

    constructor() ERC721("LocacaoNFT", "LOCNFT") {}

    function mintNFT(address to, string memory tokenURI) external onlyOwner returns (uint256) {
        tokenCount += 1;
        uint256 newId = tokenCount;
        _mint(to, newId);
        _setTokenURI(newId, tokenURI);
        return newId;
    }

    function registrarReserva(
        uint256 tokenId,
        address hospede,
        uint64 checkIn,
        uint64 checkOut,
        uint256 caucao,
        uint8 politicaCancelamento
    ) external onlyOwner {
        reservas[tokenId] = Reserva(tokenId, hospede, checkIn, checkOut, caucao, politicaCancelamento, true);
    }

    function cancelarReserva(uint256 tokenId) external onlyOwner {
        require(reservas[tokenId].ativa, "Reserva inativa");
        reservas[tokenId].ativa = false;
    }
}
`
}
