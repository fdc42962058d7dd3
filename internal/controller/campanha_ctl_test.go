package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nftdiarias_dev_v1_202608/internal/model"
	"nftdiarias_dev_v1_202608/internal/repository"
	"nftdiarias_dev_v1_202608/internal/service"
)

// ==================== 测试辅助 ====================

func setupCampanhaCtlRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Campanha{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}

	ctl := NewCampanhaController(service.NewCampanhaService(repository.NewCampanhaRepository(db)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/api/campanha", ctl.Listar)
	r.GET("/api/campanha/stats", ctl.Stats)
	r.POST("/api/campanha", ctl.Criar)
	r.PUT("/api/campanha/:id", ctl.AtualizarStatus)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode falhou: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 测试 ====================

func TestCampanhaEndpoints(t *testing.T) {
	r, _ := setupCampanhaCtlRouter(t)

	// cria um item
	w := doJSON(t, r, http.MethodPost, "/api/campanha", gin.H{
		"Tema":        "lançamento verão",
		"Responsável": "Marina",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var criado model.Campanha
	if err := json.Unmarshal(w.Body.Bytes(), &criado); err != nil {
		t.Fatalf("decode falhou: %v", err)
	}
	if criado.Responsavel != "Marina" {
		t.Errorf("campo Responsável não roundtripou: %+v", criado)
	}

	t.Run("lista preserva chave com acento", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/campanha", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list: status %d", w.Code)
		}
		var itens []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &itens); err != nil {
			t.Fatalf("decode falhou: %v", err)
		}
		if len(itens) != 1 {
			t.Fatalf("esperava 1 item, got %d", len(itens))
		}
		if _, ok := itens[0]["Responsável"]; !ok {
			t.Errorf("faltou a chave 'Responsável': %v", itens[0])
		}
	})

	t.Run("stats", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/campanha/stats", nil)
		var stats map[string]int64
		if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
			t.Fatalf("decode falhou: %v", err)
		}
		if stats["total"] != 1 || stats["planejado"] != 1 {
			t.Errorf("stats erradas: %v", stats)
		}
	})

	t.Run("update status ok", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/campanha/"+criado.ID, gin.H{"Status": "Aprovado"})
		if w.Code != http.StatusOK {
			t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"success":true`)) {
			t.Errorf("resposta errada: %s", w.Body.String())
		}
	})

	t.Run("status inválido devolve 422", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/campanha/"+criado.ID, gin.H{"Status": "Rascunho"})
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("esperava 422, got %d", w.Code)
		}
	})

	t.Run("id inexistente devolve 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/campanha/nao-existe", gin.H{"Status": "Aprovado"})
		if w.Code != http.StatusNotFound {
			t.Errorf("esperava 404, got %d", w.Code)
		}
	})

	t.Run("sem Tema devolve 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/campanha", gin.H{"Formato": "reel"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, got %d", w.Code)
		}
	})

	t.Run("create com status inválido devolve 422", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/campanha", gin.H{
			"Tema":   "teaser",
			"Status": "Rascunho",
		})
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("esperava 422, got %d, body %s", w.Code, w.Body.String())
		}
	})
}

func TestCampanhaCriarFalhaInfra(t *testing.T) {
	r, db := setupCampanhaCtlRouter(t)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("obter conexão falhou: %v", err)
	}
	sqlDB.Close()

	w := doJSON(t, r, http.MethodPost, "/api/campanha", gin.H{"Tema": "teaser"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("falha de banco deveria dar 500, got %d", w.Code)
	}
}
