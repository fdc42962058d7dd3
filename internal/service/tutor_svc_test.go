package service

import (
	"context"
	"errors"
	"testing"

	"nftdiarias_dev_v1_202608/internal/api/dto"
)

type fakeTTS struct {
	texto  string
	falhar bool
}

func (f *fakeTTS) Sintetizar(ctx context.Context, texto, idioma string) (string, error) {
	if f.falhar {
		return "", errors.New("tts indisponível")
	}
	f.texto = texto
	return "YmFzZTY0LWF1ZGlv", nil
}

func TestTutorPlanos(t *testing.T) {
	svc := NewTutorService(nil)
	ctx := context.Background()

	for _, plano := range []string{"start", "pro", "business", "START"} {
		res, err := svc.Executar(ctx, plano)
		if err != nil {
			t.Fatalf("plano %q: erro inesperado: %v", plano, err)
		}
		roteiro, ok := res.(*dto.TutorRoteiroResposta)
		if !ok {
			t.Fatalf("plano %q: esperava roteiro, got %T", plano, res)
		}
		if len(roteiro.Etapas) != 3 {
			t.Errorf("plano %q: esperava 3 etapas, got %d", plano, len(roteiro.Etapas))
		}
		if roteiro.Etapas[0].ID != 1 {
			t.Errorf("plano %q: etapas fora de ordem: %+v", plano, roteiro.Etapas)
		}
	}
}

func TestTutorAudio(t *testing.T) {
	ctx := context.Background()

	t.Run("texto livre vira áudio", func(t *testing.T) {
		tts := &fakeTTS{}
		svc := NewTutorService(tts)

		res, err := svc.Executar(ctx, "como emitir minha primeira NFT?")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		audio := res.(*dto.TutorAudioResposta)
		if audio.AudioBase64 == "" || audio.Transcricao != "como emitir minha primeira NFT?" {
			t.Errorf("resposta de áudio errada: %+v", audio)
		}
		if tts.texto != "como emitir minha primeira NFT?" {
			t.Error("tts não recebeu o texto")
		}
	})

	t.Run("falha do tts vira erro estruturado", func(t *testing.T) {
		svc := NewTutorService(&fakeTTS{falhar: true})
		if _, err := svc.Executar(ctx, "qualquer texto"); err == nil {
			t.Error("falha de tts deveria propagar")
		}
	})

	t.Run("sem tts configurado é erro", func(t *testing.T) {
		svc := NewTutorService(nil)
		if _, err := svc.Executar(ctx, "texto livre"); err == nil {
			t.Error("sem tts deveria falhar para texto livre")
		}
	})
}

func TestTutorProgresso(t *testing.T) {
	svc := NewTutorService(nil)
	res := svc.RegistrarProgresso(&dto.TutorProgressoReq{
		IDPerfil: "p1", Etapa: "2", Texto: "cadastro feito",
	})

	if !res.Sucesso || res.Dados.IDPerfil != "p1" {
		t.Errorf("progresso não ecoado: %+v", res)
	}
}
