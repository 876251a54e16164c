package assistant

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

func CleanupFiles(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.MaintenanceService.CleanupFiles(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func StorageStats(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.MaintenanceService.StorageStats(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func Health(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.MaintenanceService.Health(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
