package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewStorageService_Local(t *testing.T) {
	tempDir := t.TempDir()

	svc, err := NewStorageService(&StorageConfig{
		Provider: "local",
		BasePath: tempDir,
	})

	if err != nil {
		t.Fatalf("NewStorageService() error = %v", err)
	}

	if svc == nil {
		t.Fatal("NewStorageService() 返回 nil")
	}
}

func TestNewStorageService_InvalidProvider(t *testing.T) {
	_, err := NewStorageService(&StorageConfig{
		Provider: "gcs",
	})

	if err == nil {
		t.Error("期望返回错误，但未返回")
	}
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()

	svc, err := NewStorageService(&StorageConfig{
		Provider: "local",
		BasePath: tempDir,
		BaseURL:  "http://localhost:8000/exports",
	})
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	ctx := context.Background()
	dados := []byte("manifesto de teste")

	url, err := svc.Upload(ctx, dados, "market-1x1.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if url != "http://localhost:8000/exports/market-1x1.jpg" {
		t.Errorf("URL errada: %s", url)
	}
	if url != svc.PublicURL("market-1x1.jpg") {
		t.Error("Upload() e PublicURL() divergem para o mesmo arquivo")
	}

	gravado, err := os.ReadFile(filepath.Join(tempDir, "market-1x1.jpg"))
	if err != nil {
		t.Fatalf("arquivo não foi gravado: %v", err)
	}
	if string(gravado) != string(dados) {
		t.Errorf("conteúdo gravado difere: %q", gravado)
	}

	if err := svc.Delete(ctx, url); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "market-1x1.jpg")); !os.IsNotExist(err) {
		t.Error("arquivo deveria ter sido removido")
	}

	if err := svc.Delete(ctx, url); err == nil {
		t.Error("Delete() de arquivo inexistente deveria falhar")
	}
}

func TestLocalStorage_UploadIgnoraDiretorio(t *testing.T) {
	tempDir := t.TempDir()

	svc, err := NewStorageService(&StorageConfig{
		Provider: "local",
		BasePath: tempDir,
	})
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	// caminhos com diretório são achatados para o nome base
	url, err := svc.Upload(context.Background(), []byte("x"), "../fora/nft-square.png", "image/png")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if filepath.Base(url) != "nft-square.png" {
		t.Errorf("URL deveria usar só o nome base: %s", url)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "nft-square.png")); err != nil {
		t.Errorf("arquivo deveria estar dentro do basePath: %v", err)
	}
}

func TestS3Storage_PublicURL(t *testing.T) {
	casos := []struct {
		nome     string
		storage  *S3Storage
		arquivo  string
		esperado string
	}{
		{
			nome:     "bucket direto",
			storage:  &S3Storage{bucket: "nftdiarias", region: "us-east-1"},
			arquivo:  "nft-hero.png",
			esperado: "https://nftdiarias.s3.us-east-1.amazonaws.com/nft-hero.png",
		},
		{
			nome:     "com basePath",
			storage:  &S3Storage{bucket: "nftdiarias", region: "us-east-1", basePath: "/exports/"},
			arquivo:  "nft-hero.png",
			esperado: "https://nftdiarias.s3.us-east-1.amazonaws.com/exports/nft-hero.png",
		},
		{
			nome:     "CDN tem prioridade",
			storage:  &S3Storage{bucket: "nftdiarias", region: "us-east-1", cdnDomain: "cdn.nftdiarias.app"},
			arquivo:  "nft-hero.png",
			esperado: "https://cdn.nftdiarias.app/nft-hero.png",
		},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := c.storage.PublicURL(c.arquivo); got != c.esperado {
				t.Errorf("PublicURL() = %s, esperava %s", got, c.esperado)
			}
		})
	}
}

func TestS3Storage_ExtractKey(t *testing.T) {
	s := &S3Storage{bucket: "nftdiarias", region: "us-east-1", basePath: "exports"}

	url := s.PublicURL("market-4x3.jpg")
	if key := s.extractKey(url); key != "exports/market-4x3.jpg" {
		t.Errorf("extractKey() = %q", key)
	}

	cdn := &S3Storage{bucket: "nftdiarias", region: "us-east-1", cdnDomain: "cdn.nftdiarias.app"}
	if key := cdn.extractKey(cdn.PublicURL("icon.svg")); key != "icon.svg" {
		t.Errorf("extractKey() via CDN = %q", key)
	}
}

func TestStorageConfigFromEnv(t *testing.T) {
	t.Run("sem provider retorna nil", func(t *testing.T) {
		cfg := StorageConfigFromEnv(func(_, def string) string { return def })
		if cfg != nil {
			t.Errorf("esperava nil, got %+v", cfg)
		}
	})

	t.Run("provider configurado", func(t *testing.T) {
		env := map[string]string{
			"STORAGE_PROVIDER": "s3",
			"STORAGE_BUCKET":   "nftdiarias",
		}
		cfg := StorageConfigFromEnv(func(key, def string) string {
			if v, ok := env[key]; ok {
				return v
			}
			return def
		})
		if cfg == nil {
			t.Fatal("config não deveria ser nil")
		}
		if cfg.Provider != "s3" || cfg.Bucket != "nftdiarias" || cfg.Region != "us-east-1" {
			t.Errorf("config errada: %+v", cfg)
		}
	})
}
