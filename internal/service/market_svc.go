package service

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"nftdiarias_dev_v1_202608/internal/api/dto"
	"nftdiarias_dev_v1_202608/pkg/utils"
)

// ==================== 常量 ====================

const (
	datasetCacheTTL    = 24 * time.Hour
	datasetCachePrefix = "dataset:"
	fonteInsideAirbnb  = "InsideAirbnb"
	fonteIndisponivel  = "InsideAirbnb (indisponível p/ cidade)"
	fonteFalhaLeitura  = "InsideAirbnb (falha de leitura)"
	diasAnoDisponib    = 365.0
	topNSazonalidade   = 3
	topNTiposImovel    = 3
)

// 月份缩写（pt-BR）
var nomesMeses = map[int]string{
	1: "jan", 2: "fev", 3: "mar", 4: "abr", 5: "mai", 6: "jun",
	7: "jul", 8: "ago", 9: "set", 10: "out", 11: "nov", 12: "dez",
}

// 价格列按优先级探测
var colunasPreco = []string{"price", "median_price", "avg_price"}

// 房型列按优先级探测
var colunasTipoImovel = []string{"room_type", "property_type", "room_type_category"}

var rePrecoLimpar = regexp.MustCompile(`[^\d,.]`)

// ==================== 服务 ====================

// MarketDataService 城市短租数据集服务
// 下载 InsideAirbnb listings.csv(.gz)，聚合出城市级指标，结果带 TTL 缓存
type MarketDataService struct {
	client       *resty.Client
	cityDatasets map[string]string
}

// NewMarketDataService 创建数据集服务
// cityDatasets: 城市名 -> listings.csv(.gz) URL；URL 为空串表示该城市无数据源
func NewMarketDataService(cityDatasets map[string]string) *MarketDataService {
	if cityDatasets == nil {
		cityDatasets = map[string]string{}
	}
	return &MarketDataService{
		client: resty.New().
			SetTimeout(60 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(2 * time.Second),
		cityDatasets: cityDatasets,
	}
}

// Cidades 返回已配置数据源的城市列表（用于定时预热）
func (s *MarketDataService) Cidades() []string {
	out := make([]string, 0, len(s.cityDatasets))
	for c, url := range s.cityDatasets {
		if url != "" {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// TemDados 是否至少有一个城市配置了数据源
func (s *MarketDataService) TemDados() bool {
	return len(s.Cidades()) > 0
}

// GetCityMetrics 批量计算城市指标
// 未配置或下载失败的城市返回全空指标条目，永不返回错误
func (s *MarketDataService) GetCityMetrics(cidades []string) map[string]dto.CityMetrics {
	out := make(map[string]dto.CityMetrics, len(cidades))
	for _, c := range cidades {
		out[c] = s.ComputeMetricsForCity(c, s.cityDatasets[c])
	}
	return out
}

// ComputeMetricsForCity 计算单个城市指标
func (s *MarketDataService) ComputeMetricsForCity(cidade, url string) dto.CityMetrics {
	if url == "" {
		return dto.CityMetrics{
			Cidade:       cidade,
			Sazonalidade: []string{},
			TiposImovel:  []string{},
			Fonte:        fonteIndisponivel,
		}
	}

	registros, err := s.baixarDataset(url)
	if err != nil {
		log.Printf("[MARKET] Falha ao ler dataset de %s: %v", cidade, err)
		return dto.CityMetrics{
			Cidade:       cidade,
			Sazonalidade: []string{},
			TiposImovel:  []string{},
			Fonte:        fonteFalhaLeitura,
			Erro:         err.Error(),
		}
	}

	return dto.CityMetrics{
		Cidade:        cidade,
		TicketMedio:   roundPtr(mediaPrecos(registros), 2),
		OcupacaoMedia: roundPtr(ocupacaoMedia(registros), 4),
		Sazonalidade:  sazonalidade(registros),
		TiposImovel:   tiposImovel(registros),
		DuracaoMedia:  roundPtr(mediaColuna(registros, "minimum_nights"), 2),
		Fonte:         fonteInsideAirbnb,
	}
}

// RefreshAll 预热所有已配置城市的缓存（定时任务用）
func (s *MarketDataService) RefreshAll() {
	for _, cidade := range s.Cidades() {
		url := s.cityDatasets[cidade]
		utils.DeleteCache(datasetCachePrefix + url)
		m := s.ComputeMetricsForCity(cidade, url)
		if m.Erro != "" {
			log.Printf("[MARKET] Refresh de %s falhou: %s", cidade, m.Erro)
		} else {
			log.Printf("[MARKET] Dataset de %s atualizado", cidade)
		}
	}
}

// ==================== 下载与解析 ====================

// registro 一行 listings 数据（列名 -> 原始值）
type registro map[string]string

func (s *MarketDataService) baixarDataset(url string) ([]registro, error) {
	cacheKey := datasetCachePrefix + url
	raw, ok := utils.GetCache(cacheKey)
	if !ok {
		resp, err := s.client.R().Get(url)
		if err != nil {
			return nil, fmt.Errorf("download falhou: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("download falhou: HTTP %d", resp.StatusCode())
		}
		raw = resp.Body()
		utils.SetCache(cacheKey, raw, datasetCacheTTL)
	}

	var reader io.Reader = bytes.NewReader(raw)
	if strings.HasSuffix(url, ".gz") {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("gzip inválido: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return ParseListingsCSV(reader)
}

// ParseListingsCSV 解析 listings CSV，首行为表头
// 列数不一致的行直接跳过（真实数据集常见）
func ParseListingsCSV(r io.Reader) ([]registro, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV sem cabeçalho: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	var out []registro
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(row) != len(header) {
			continue
		}
		rec := make(registro, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("CSV sem linhas de dados")
	}
	return out, nil
}

// ==================== 聚合 ====================

// NormalizarPreco 解析 "R$1.234,56" / "$1,234.56" 风格的价格字符串
// 规则：去掉非数字字符，千分点去掉，十进制逗号换成点
func NormalizarPreco(s string) (float64, bool) {
	limpo := rePrecoLimpar.ReplaceAllString(s, "")
	limpo = strings.ReplaceAll(limpo, ".", "")
	limpo = strings.ReplaceAll(limpo, ",", ".")
	if limpo == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func mediaPrecos(regs []registro) *float64 {
	col := primeiraColuna(regs, colunasPreco)
	if col == "" {
		return nil
	}
	var soma float64
	var n int
	for _, r := range regs {
		if v, ok := NormalizarPreco(r[col]); ok {
			soma += v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := soma / float64(n)
	return &m
}

func ocupacaoMedia(regs []registro) *float64 {
	media := mediaColuna(regs, "availability_365")
	if media == nil {
		return nil
	}
	o := 1.0 - *media/diasAnoDisponib
	return &o
}

func mediaColuna(regs []registro, col string) *float64 {
	if !temColuna(regs, col) {
		return nil
	}
	var soma float64
	var n int
	for _, r := range regs {
		if v, err := strconv.ParseFloat(strings.TrimSpace(r[col]), 64); err == nil {
			soma += v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := soma / float64(n)
	return &m
}

// sazonalidade 按 last_review 月份频次取前三个月
func sazonalidade(regs []registro) []string {
	if !temColuna(regs, "last_review") {
		return []string{}
	}
	contagem := map[int]int{}
	for _, r := range regs {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(r["last_review"]))
		if err != nil {
			continue
		}
		contagem[int(t.Month())]++
	}
	meses := topKeys(contagem, topNSazonalidade)
	out := make([]string, 0, len(meses))
	for _, m := range meses {
		out = append(out, nomesMeses[m])
	}
	return out
}

// tiposImovel 按房型列频次取前三类
func tiposImovel(regs []registro) []string {
	col := primeiraColuna(regs, colunasTipoImovel)
	if col == "" {
		return []string{}
	}
	contagem := map[string]int{}
	for _, r := range regs {
		v := strings.TrimSpace(r[col])
		if v != "" {
			contagem[v]++
		}
	}
	type par struct {
		nome string
		n    int
	}
	pares := make([]par, 0, len(contagem))
	for k, v := range contagem {
		pares = append(pares, par{k, v})
	}
	sort.Slice(pares, func(i, j int) bool {
		if pares[i].n != pares[j].n {
			return pares[i].n > pares[j].n
		}
		return pares[i].nome < pares[j].nome
	})
	out := []string{}
	for i := 0; i < len(pares) && i < topNTiposImovel; i++ {
		out = append(out, pares[i].nome)
	}
	return out
}

// ==================== 内部工具 ====================

func temColuna(regs []registro, col string) bool {
	if len(regs) == 0 {
		return false
	}
	_, ok := regs[0][col]
	return ok
}

func primeiraColuna(regs []registro, candidatas []string) string {
	for _, c := range candidatas {
		if temColuna(regs, c) {
			return c
		}
	}
	return ""
}

// topKeys 按计数降序取前 k 个键；同分时按键升序保证确定性
func topKeys(contagem map[int]int, k int) []int {
	keys := make([]int, 0, len(contagem))
	for key := range contagem {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if contagem[keys[i]] != contagem[keys[j]] {
			return contagem[keys[i]] > contagem[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > k {
		keys = keys[:k]
	}
	return keys
}

func roundPtr(v *float64, casas int) *float64 {
	if v == nil {
		return nil
	}
	fator := math.Pow(10, float64(casas))
	r := math.Round(*v*fator) / fator
	return &r
}

// CityDatasetsFromEnv 解析 "Cidade=url;Cidade2=url" 格式的配置
func CityDatasetsFromEnv(raw string) map[string]string {
	out := map[string]string{}
	for _, par := range strings.Split(raw, ";") {
		par = strings.TrimSpace(par)
		if par == "" {
			continue
		}
		idx := strings.Index(par, "=")
		if idx <= 0 {
			continue
		}
		out[strings.TrimSpace(par[:idx])] = strings.TrimSpace(par[idx+1:])
	}
	return out
}
