package dto

// ==================== 通用响应 ====================

// SucessoResp 统一成功响应（保持前端既有的葡语字段约定）
type SucessoResp struct {
	Sucesso   bool `json:"sucesso"`
	Resultado any  `json:"resultado"`
}

// ErroResp 统一失败响应
// 任何异常都在 controller 边界转换为该结构，不向 HTTP 层抛异常、不暴露堆栈
type ErroResp struct {
	Sucesso bool   `json:"sucesso"`
	Erro    string `json:"erro"`
}

// OK 包装成功响应
func OK(resultado any) SucessoResp {
	return SucessoResp{Sucesso: true, Resultado: resultado}
}

// Falha 包装失败响应
func Falha(msg string) ErroResp {
	return ErroResp{Sucesso: false, Erro: msg}
}
