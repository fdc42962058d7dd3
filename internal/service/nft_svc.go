package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"nftdiarias_dev_v1_202608/internal/api/dto"
)

// ==================== 协作方接口 ====================

// IPFSUploader 元数据上链前的 IPFS 上传
type IPFSUploader interface {
	Upload(ctx context.Context, metadata *dto.NFTMetadata) (tokenURI, ipfsHash string, err error)
}

// ChainMinter 链上铸造
type ChainMinter interface {
	Mint(ctx context.Context, wallet, tokenURI string) (txHash, nftID string, err error)
}

// ProofGenerator 铸造凭证 PDF 生成
type ProofGenerator interface {
	GerarProva(ctx context.Context, dados map[string]any) (url string, err error)
}

// ==================== 服务 ====================

const politicaCancelamentoDefault = "moderada"

// NFTService NFT 发行代理
// 流程：元数据 -> IPFS -> mint -> 凭证 PDF；任一步失败立即返回错误，无部分写入
type NFTService struct {
	ipfs  IPFSUploader
	chain ChainMinter
	proof ProofGenerator
}

// NewNFTService 创建 NFT 服务；proof 可为 nil（跳过凭证生成）
func NewNFTService(ipfs IPFSUploader, chain ChainMinter, proof ProofGenerator) *NFTService {
	return &NFTService{ipfs: ipfs, chain: chain, proof: proof}
}

// MontarMetadata 由请求组装 ERC-721 元数据
func (s *NFTService) MontarMetadata(req *dto.NFTRequest) *dto.NFTMetadata {
	return &dto.NFTMetadata{
		Name:        req.NomeNFT,
		Description: req.Descricao,
		Image:       req.ImagemURL,
		Attributes: []dto.NFTAttribute{
			{TraitType: "Data de Início", Value: req.DataInicio},
			{TraitType: "Data de Fim", Value: req.DataFim},
			{TraitType: "Valor da Diária", Value: req.ValorDiaria},
			{TraitType: "Moeda", Value: req.Moeda},
			{TraitType: "Regras", Value: req.Regras},
			{TraitType: "Política de Cancelamento", Value: politicaOuDefault(req.PoliticaCancelamento)},
		},
	}
}

// Executar 发行 NFT
func (s *NFTService) Executar(ctx context.Context, req *dto.NFTRequest) (*dto.NFTResultado, error) {
	metadata := s.MontarMetadata(req)

	tokenURI, ipfsHash, err := s.ipfs.Upload(ctx, metadata)
	if err != nil {
		return nil, fmt.Errorf("upload IPFS falhou: %w", err)
	}

	txHash, nftID, err := s.chain.Mint(ctx, req.Wallet, tokenURI)
	if err != nil {
		return nil, fmt.Errorf("mint na blockchain falhou: %w", err)
	}

	var provaURL string
	if s.proof != nil {
		provaURL, err = s.proof.GerarProva(ctx, map[string]any{
			"nftId":     nftID,
			"nome":      req.NomeProprietario,
			"descricao": req.Descricao,
			"wallet":    req.Wallet,
			"tokenURI":  tokenURI,
			"txHash":    txHash,
		})
		if err != nil {
			return nil, fmt.Errorf("geração de prova PDF falhou: %w", err)
		}
	}

	log.Printf("[AGENTE NFT] NFT %s mintada para %s (tx %s)", nftID, req.Wallet, txHash)

	return &dto.NFTResultado{
		Agente:              "nft",
		Status:              "ativo",
		Mensagem:            "NFT da diária criada com sucesso na blockchain.",
		TokenURI:            tokenURI,
		IpfsHash:            ipfsHash,
		TxHash:              txHash,
		IDNFT:               nftID,
		ProvaVerificacaoNFT: provaURL,
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func politicaOuDefault(p string) string {
	if p == "" {
		return politicaCancelamentoDefault
	}
	return p
}

// ==================== Bridge 客户端 ====================

// NFTBridgeClient 通过 HTTP bridge 访问 IPFS/链/PDF 三个协作方
// 一个基础 URL 下挂三条路由：/ipfs/upload、/chain/mint、/pdf/prova
type NFTBridgeClient struct {
	client *resty.Client
}

// NewNFTBridgeClient 创建 bridge 客户端
func NewNFTBridgeClient(baseURL string) *NFTBridgeClient {
	return &NFTBridgeClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

type ipfsUploadResp struct {
	TokenURI string `json:"tokenURI"`
	IpfsHash string `json:"ipfsHash"`
	Erro     string `json:"erro"`
}

func (c *NFTBridgeClient) Upload(ctx context.Context, metadata *dto.NFTMetadata) (string, string, error) {
	var out ipfsUploadResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(metadata).
		SetResult(&out).
		Post("/ipfs/upload")
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode() != 200 {
		return "", "", fmt.Errorf("bridge IPFS HTTP %d: %s", resp.StatusCode(), out.Erro)
	}
	return out.TokenURI, out.IpfsHash, nil
}

type chainMintResp struct {
	TxHash string `json:"txHash"`
	NftID  string `json:"nftId"`
	Erro   string `json:"erro"`
}

func (c *NFTBridgeClient) Mint(ctx context.Context, wallet, tokenURI string) (string, string, error) {
	var out chainMintResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"wallet": wallet, "tokenURI": tokenURI}).
		SetResult(&out).
		Post("/chain/mint")
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode() != 200 {
		return "", "", fmt.Errorf("bridge blockchain HTTP %d: %s", resp.StatusCode(), out.Erro)
	}
	return out.TxHash, out.NftID, nil
}

type pdfProvaResp struct {
	URL  string `json:"url"`
	Erro string `json:"erro"`
}

func (c *NFTBridgeClient) GerarProva(ctx context.Context, dados map[string]any) (string, error) {
	var out pdfProvaResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(dados).
		SetResult(&out).
		Post("/pdf/prova")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("bridge PDF HTTP %d: %s", resp.StatusCode(), out.Erro)
	}
	return out.URL, nil
}
