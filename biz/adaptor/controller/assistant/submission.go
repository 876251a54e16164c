package assistant

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateSubmission(ctx context.Context, c *app.RequestContext) {
	var req assistant.CreateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SubmissionService.CreateSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListSubmissionsByTest(ctx context.Context, c *app.RequestContext) {
	var req assistant.ListSubmissionsByTestReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SubmissionService.ListSubmissionsByTest(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListSubmissionsByStudent(ctx context.Context, c *app.RequestContext) {
	var req assistant.ListSubmissionsByStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SubmissionService.ListSubmissionsByStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetSubmission(ctx context.Context, c *app.RequestContext) {
	var req assistant.GetSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SubmissionService.GetSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteSubmission(ctx context.Context, c *app.RequestContext) {
	var req assistant.DeleteSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SubmissionService.DeleteSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func RetryGrading(ctx context.Context, c *app.RequestContext) {
	var req assistant.RetryGradingReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.SubmissionService.RetryGrading(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
