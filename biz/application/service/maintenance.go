package service

import (
	"context"
	"time"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	rds "paper-grade/biz/infrastructure/redis"
	"paper-grade/biz/infrastructure/storage"
	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/google/wire"
)

const cleanupInterval = time.Hour

type IMaintenanceService interface {
	CleanupFiles(ctx context.Context) (*assistant.CleanupFilesResp, error)
	StorageStats(ctx context.Context) (*assistant.StorageStatsResp, error)
	Health(ctx context.Context) (*assistant.HealthResp, error)
}

type MaintenanceService struct {
	Config *config.Config
	Store  storage.IStore
}

var MaintenanceServiceSet = wire.NewSet(
	wire.Struct(new(MaintenanceService), "*"),
	wire.Bind(new(IMaintenanceService), new(*MaintenanceService)),
)

// StartCleanup deletes expired files on an hourly schedule until the context
// is cancelled.
func (s *MaintenanceService) StartCleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if resp, err := s.cleanup(ctx); err != nil {
				log.Error("scheduled cleanup failed: %v", err)
			} else if resp.DeletedCount > 0 {
				log.Info("cleanup removed %d of %d expired files", resp.DeletedCount, resp.TotalExpired)
			}
		}
	}
}

// CleanupFiles removes files whose retention window has passed.
func (s *MaintenanceService) CleanupFiles(ctx context.Context) (*assistant.CleanupFilesResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}
	return s.cleanup(ctx)
}

func (s *MaintenanceService) cleanup(ctx context.Context) (*assistant.CleanupFilesResp, error) {
	expired, err := s.Store.FindExpired(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	resp := &assistant.CleanupFilesResp{TotalExpired: int64(len(expired))}
	for _, f := range expired {
		if err = s.Store.Delete(ctx, f.ID); err != nil {
			log.Error("delete expired file %s failed: %v", f.ID, err)
			resp.Errors = append(resp.Errors, err.Error())
			continue
		}
		resp.DeletedCount++
	}
	return resp, nil
}

func (s *MaintenanceService) StorageStats(ctx context.Context) (*assistant.StorageStatsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	stats, err := s.Store.GetStats(ctx)
	if err != nil {
		return &assistant.StorageStatsResp{StorageHealthy: false}, nil
	}

	return &assistant.StorageStatsResp{
		TotalFiles:     stats.TotalFiles,
		TotalSizeMB:    float64(stats.TotalBytes) / (1 << 20),
		RecentFiles:    stats.RecentFiles,
		OldFiles:       stats.OldFiles,
		StorageHealthy: true,
	}, nil
}

// Health probes the database, redis and the AI endpoint.
func (s *MaintenanceService) Health(ctx context.Context) (*assistant.HealthResp, error) {
	resp := &assistant.HealthResp{}

	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.Store.Ping(probeCtx); err != nil {
		resp.Detail = err.Error()
	} else {
		resp.DatabaseHealthy = true
	}

	if rds.GetRedis(s.Config).PingCtx(probeCtx) {
		resp.RedisHealthy = true
	}

	if err := util.GetAIClient().Ping(probeCtx); err == nil {
		resp.AIHealthy = true
	}

	return resp, nil
}
