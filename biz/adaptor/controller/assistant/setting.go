package assistant

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func GetPrompts(ctx context.Context, c *app.RequestContext) {
	var req assistant.GetPromptsReq
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SettingService.GetPrompts(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdatePrompt(ctx context.Context, c *app.RequestContext) {
	var req assistant.UpdatePromptReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SettingService.UpdatePrompt(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
