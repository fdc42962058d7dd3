package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"nftdiarias_dev_v1_202608/internal/api/dto"
)

// ==================== 协作方接口 ====================

// TTSClient 文本转语音协作方
type TTSClient interface {
	Sintetizar(ctx context.Context, texto, idioma string) (audioBase64 string, err error)
}

// ==================== 计划脚本 ====================

var planosOnboarding = map[string][]dto.EtapaPlano{
	"start": {
		{ID: 1, Texto: "Bem-vindo ao plano Start! Vamos começar seu cadastro."},
		{ID: 2, Texto: "Cadastre sua propriedade com endereço e fotos."},
		{ID: 3, Texto: "Defina regras de hospedagem e finalize seu NFT."},
	},
	"pro": {
		{ID: 1, Texto: "Você escolheu o plano Pro. Vamos registrar múltiplos imóveis."},
		{ID: 2, Texto: "Use IA para gerar descrições e regras automáticas."},
		{ID: 3, Texto: "Acompanhe relatórios na aba de NFTs emitidos."},
	},
	"business": {
		{ID: 1, Texto: "Plano Business selecionado. Começando o fluxo da imobiliária."},
		{ID: 2, Texto: "Cadastre membros da equipe e acesse a API."},
		{ID: 3, Texto: "Participe da DAO e votações com acesso premium."},
	},
}

// ==================== 服务 ====================

// TutorService 教程代理
// 输入是计划名时返回 onboarding 脚本，否则走 TTS 协作方生成语音
type TutorService struct {
	tts TTSClient
}

// NewTutorService 创建教程服务；tts 可为 nil（只支持计划脚本）
func NewTutorService(tts TTSClient) *TutorService {
	return &TutorService{tts: tts}
}

// Executar 执行教程代理
func (s *TutorService) Executar(ctx context.Context, entrada string) (any, error) {
	if etapas, ok := planosOnboarding[strings.ToLower(entrada)]; ok {
		return &dto.TutorRoteiroResposta{
			Agente:   "tutor",
			Status:   "ativo",
			Mensagem: "Roteiro de onboarding retornado com sucesso.",
			Etapas:   etapas,
		}, nil
	}

	if s.tts == nil {
		return nil, fmt.Errorf("tutoria por voz indisponível: serviço TTS não configurado")
	}

	audio, err := s.tts.Sintetizar(ctx, entrada, "pt-br")
	if err != nil {
		log.Printf("[AGENTE TUTOR] Falha no TTS: %v", err)
		return nil, fmt.Errorf("não foi possível gerar a tutoria por voz: %w", err)
	}

	return &dto.TutorAudioResposta{
		Agente:      "tutor",
		Status:      "ativo",
		Mensagem:    "Áudio de tutoria gerado com sucesso.",
		AudioBase64: audio,
		Transcricao: entrada,
	}, nil
}

// RegistrarProgresso 记录学习进度（目前只回显并落日志）
func (s *TutorService) RegistrarProgresso(req *dto.TutorProgressoReq) *dto.TutorProgressoResposta {
	log.Printf("[AGENTE TUTOR] Progresso: perfil=%s etapa=%s", req.IDPerfil, req.Etapa)
	return &dto.TutorProgressoResposta{
		Sucesso:  true,
		Mensagem: "Progresso registrado.",
		Dados:    *req,
	}
}

// ==================== Bridge 客户端 ====================

// TTSBridgeClient 通过 HTTP bridge 调用 TTS 服务
type TTSBridgeClient struct {
	client *resty.Client
}

// NewTTSBridgeClient 创建 TTS bridge 客户端
func NewTTSBridgeClient(baseURL string) *TTSBridgeClient {
	return &TTSBridgeClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

type ttsResp struct {
	AudioBase64 string `json:"audio_base64"`
	Erro        string `json:"erro"`
}

func (c *TTSBridgeClient) Sintetizar(ctx context.Context, texto, idioma string) (string, error) {
	var out ttsResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"texto": texto, "idioma": idioma}).
		SetResult(&out).
		Post("/tts/sintetizar")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("bridge TTS HTTP %d: %s", resp.StatusCode(), out.Erro)
	}
	return out.AudioBase64, nil
}
