package assistant

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateTest(ctx context.Context, c *app.RequestContext) {
	var req assistant.CreateTestReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.CreateTest(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListTests(ctx context.Context, c *app.RequestContext) {
	var req assistant.ListTestsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.ListTests(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetTest(ctx context.Context, c *app.RequestContext) {
	var req assistant.GetTestReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.GetTest(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateTest(ctx context.Context, c *app.RequestContext) {
	var req assistant.UpdateTestReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.UpdateTest(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteTest(ctx context.Context, c *app.RequestContext) {
	var req assistant.DeleteTestReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.DeleteTest(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ExtractRubric(ctx context.Context, c *app.RequestContext) {
	var req assistant.ExtractRubricReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.ExtractRubric(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ExtractQuestions(ctx context.Context, c *app.RequestContext) {
	var req assistant.ExtractQuestionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.ExtractQuestions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListQuestions(ctx context.Context, c *app.RequestContext) {
	var req assistant.ListQuestionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.TestService.ListQuestions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
