package service

import (
	"context"
	"errors"
	"testing"

	"nftdiarias_dev_v1_202608/internal/api/dto"
)

// ==================== 测试替身 ====================

type fakeIPFS struct {
	metadata *dto.NFTMetadata
	falhar   bool
}

func (f *fakeIPFS) Upload(ctx context.Context, metadata *dto.NFTMetadata) (string, string, error) {
	if f.falhar {
		return "", "", errors.New("ipfs fora do ar")
	}
	f.metadata = metadata
	return "ipfs://QmTest/metadata.json", "QmTest", nil
}

type fakeMinter struct {
	wallet, tokenURI string
	falhar           bool
}

func (f *fakeMinter) Mint(ctx context.Context, wallet, tokenURI string) (string, string, error) {
	if f.falhar {
		return "", "", errors.New("rpc indisponível")
	}
	f.wallet = wallet
	f.tokenURI = tokenURI
	return "0xabc123", "42", nil
}

type fakeProof struct {
	dados map[string]any
}

func (f *fakeProof) GerarProva(ctx context.Context, dados map[string]any) (string, error) {
	f.dados = dados
	return "https://provas/42.pdf", nil
}

func nftReq() *dto.NFTRequest {
	return &dto.NFTRequest{
		NomeNFT:          "Diária Loft Centro",
		Descricao:        "Uma diária no loft",
		Wallet:           "0xwallet",
		NomeProprietario: "Ana",
		DataInicio:       "2026-09-01",
		DataFim:          "2026-09-02",
		ValorDiaria:      320.0,
		Moeda:            "BRL",
		Regras:           "sem festas",
	}
}

// ==================== 测试 ====================

func TestNFTMetadata(t *testing.T) {
	svc := NewNFTService(&fakeIPFS{}, &fakeMinter{}, nil)
	meta := svc.MontarMetadata(nftReq())

	if meta.Name != "Diária Loft Centro" {
		t.Errorf("name errado: %q", meta.Name)
	}
	if len(meta.Attributes) != 6 {
		t.Fatalf("esperava 6 atributos, got %d", len(meta.Attributes))
	}
	if meta.Attributes[0].TraitType != "Data de Início" || meta.Attributes[0].Value != "2026-09-01" {
		t.Errorf("atributo de data errado: %+v", meta.Attributes[0])
	}

	t.Run("política default moderada", func(t *testing.T) {
		ultimo := meta.Attributes[len(meta.Attributes)-1]
		if ultimo.Value != "moderada" {
			t.Errorf("política default errada: %v", ultimo.Value)
		}
	})
}

func TestNFTExecutar(t *testing.T) {
	ctx := context.Background()

	t.Run("fluxo completo ipfs -> mint -> pdf", func(t *testing.T) {
		ipfs := &fakeIPFS{}
		minter := &fakeMinter{}
		proof := &fakeProof{}
		svc := NewNFTService(ipfs, minter, proof)

		res, err := svc.Executar(ctx, nftReq())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if res.TokenURI != "ipfs://QmTest/metadata.json" || res.IpfsHash != "QmTest" {
			t.Errorf("dados ipfs errados: %+v", res)
		}
		if res.TxHash != "0xabc123" || res.IDNFT != "42" {
			t.Errorf("dados de mint errados: %+v", res)
		}
		if res.ProvaVerificacaoNFT != "https://provas/42.pdf" {
			t.Errorf("prova errada: %q", res.ProvaVerificacaoNFT)
		}
		if minter.wallet != "0xwallet" || minter.tokenURI != res.TokenURI {
			t.Error("mint não recebeu os dados do upload")
		}
		if proof.dados["nftId"] != "42" || proof.dados["txHash"] != "0xabc123" {
			t.Errorf("prova sem dados do mint: %v", proof.dados)
		}
	})

	t.Run("falha no ipfs interrompe antes do mint", func(t *testing.T) {
		minter := &fakeMinter{}
		svc := NewNFTService(&fakeIPFS{falhar: true}, minter, nil)

		if _, err := svc.Executar(ctx, nftReq()); err == nil {
			t.Fatal("falha de ipfs deveria propagar")
		}
		if minter.wallet != "" {
			t.Error("mint não deveria ter sido chamado")
		}
	})

	t.Run("falha no mint propaga", func(t *testing.T) {
		svc := NewNFTService(&fakeIPFS{}, &fakeMinter{falhar: true}, nil)
		if _, err := svc.Executar(ctx, nftReq()); err == nil {
			t.Fatal("falha de mint deveria propagar")
		}
	})

	t.Run("sem gerador de prova o campo fica vazio", func(t *testing.T) {
		svc := NewNFTService(&fakeIPFS{}, &fakeMinter{}, nil)
		res, err := svc.Executar(ctx, nftReq())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if res.ProvaVerificacaoNFT != "" {
			t.Errorf("sem proof generator, prova deveria ser vazia: %q", res.ProvaVerificacaoNFT)
		}
	})
}
