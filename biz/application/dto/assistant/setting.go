package assistant

type PromptInfo struct {
	PromptType string `json:"promptType"`
	PromptText string `json:"promptText"`
	UpdateTime int64  `json:"updateTime"`
}

type GetPromptsReq struct {
}

type GetPromptsResp struct {
	Prompts []*PromptInfo `json:"prompts"`
}

type UpdatePromptReq struct {
	PromptType string `json:"promptType" vd:"len($)>0"`
	PromptText string `json:"promptText" vd:"len($)>0"`
}
