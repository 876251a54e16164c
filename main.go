package main

import (
	"context"

	"paper-grade/biz/infrastructure/util/log"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/monitor-prometheus"
)

func main() {
	provider.Init()
	p := provider.Get()

	// the background loops stop when Spin returns
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.UserService.EnsureDefaultAdmin(ctx, p.Config.AdminSecret); err != nil {
		log.Error("ensure default admin failed: %v", err)
	}

	go p.GradingService.StartGrader(ctx)
	go p.MaintenanceService.StartCleanup(ctx)

	opts := []config.Option{server.WithHostPorts(p.Config.ListenOn)}
	if p.Config.MetricsOn != "" {
		opts = append(opts, server.WithTracer(prometheus.NewServerTracer(p.Config.MetricsOn, "/metrics")))
	}

	h := server.Default(opts...)
	customizedRegister(h)
	h.Spin()
}
