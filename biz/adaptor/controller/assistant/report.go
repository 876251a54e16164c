package assistant

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func GenerateReport(ctx context.Context, c *app.RequestContext) {
	var req assistant.GenerateReportReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ReportService.GenerateReport(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GenerateClassReport(ctx context.Context, c *app.RequestContext) {
	var req assistant.GenerateClassReportReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ReportService.GenerateClassReport(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
