package assistant

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateStudent(ctx context.Context, c *app.RequestContext) {
	var req assistant.CreateStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.StudentService.CreateStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListStudents(ctx context.Context, c *app.RequestContext) {
	var req assistant.ListStudentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.StudentService.ListStudents(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetStudent(ctx context.Context, c *app.RequestContext) {
	var req assistant.GetStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.StudentService.GetStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateStudent(ctx context.Context, c *app.RequestContext) {
	var req assistant.UpdateStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.StudentService.UpdateStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteStudent(ctx context.Context, c *app.RequestContext) {
	var req assistant.DeleteStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.StudentService.DeleteStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
