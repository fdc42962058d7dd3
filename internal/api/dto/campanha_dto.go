package dto

// ==================== 请求 DTO ====================

// CampanhaCreateReq 新建活动条目请求
type CampanhaCreateReq struct {
	Data        string `json:"Data"`
	Tema        string `json:"Tema" binding:"required"`
	Formato     string `json:"Formato"`
	Responsavel string `json:"Responsável"`
	Status      string `json:"Status"`
}

// CampanhaStatusReq 状态更新请求（PUT /api/campanha/:id）
type CampanhaStatusReq struct {
	Status string `json:"Status" binding:"required"`
}

// ==================== 响应 DTO ====================

// CampanhaUpdateResp 状态更新响应（前端约定字段为英文 success）
type CampanhaUpdateResp struct {
	Success bool `json:"success"`
}
