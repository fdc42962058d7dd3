package dto

// ==================== 请求 DTO ====================

// TutorProgressoReq 记录辅导进度请求
type TutorProgressoReq struct {
	IDPerfil string `json:"idPerfil"`
	Etapa    string `json:"etapa"`
	Texto    string `json:"texto"`
}

// ==================== 响应 DTO ====================

// EtapaPlano 计划步骤
type EtapaPlano struct {
	ID    int    `json:"id"`
	Texto string `json:"texto"`
}

// TutorRoteiroResposta 计划脚本响应（start/pro/business）
type TutorRoteiroResposta struct {
	Agente   string       `json:"agente"`
	Status   string       `json:"status"`
	Mensagem string       `json:"mensagem"`
	Etapas   []EtapaPlano `json:"etapas"`
}

// TutorAudioResposta 语音辅导响应
type TutorAudioResposta struct {
	Agente      string `json:"agente"`
	Status      string `json:"status"`
	Mensagem    string `json:"mensagem"`
	AudioBase64 string `json:"audio_base64,omitempty"`
	Transcricao string `json:"transcricao,omitempty"`
}

// TutorProgressoResposta 进度记录响应
type TutorProgressoResposta struct {
	Sucesso  bool              `json:"sucesso"`
	Mensagem string            `json:"mensagem"`
	Dados    TutorProgressoReq `json:"dados"`
}
