package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const reportCachePrefix = "cache:report"

type IReportCacheMapper interface {
	Get(ctx context.Context, key string) (*assistant.GenerateReportResp, error)
	Set(ctx context.Context, key string, data *assistant.GenerateReportResp) error
	Delete(ctx context.Context, key string) error
}

// ReportCacheMapper remembers the file id of an already generated report so
// repeated downloads do not rebuild the PDF.
type ReportCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewReportCacheMapper(config *config.Config) *ReportCacheMapper {
	return &ReportCacheMapper{
		rds: redis.GetRedis(config),
	}
}

func (m *ReportCacheMapper) Get(ctx context.Context, key string) (*assistant.GenerateReportResp, error) {
	cached, err := m.rds.GetCtx(ctx, m.buildCacheKey(key))
	if err != nil {
		return nil, err
	}
	if cached == "" {
		return nil, fmt.Errorf("cache miss")
	}
	var resp assistant.GenerateReportResp
	if err := json.Unmarshal([]byte(cached), &resp); err != nil {
		return nil, fmt.Errorf("unmarshal cached report failed: %w", err)
	}
	return &resp, nil
}

func (m *ReportCacheMapper) Set(ctx context.Context, key string, data *assistant.GenerateReportResp) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal report failed: %w", err)
	}
	return m.rds.SetexCtx(ctx, m.buildCacheKey(key), string(raw), consts.ReportCacheExpireS)
}

func (m *ReportCacheMapper) Delete(ctx context.Context, key string) error {
	_, err := m.rds.DelCtx(ctx, m.buildCacheKey(key))
	return err
}

func (m *ReportCacheMapper) buildCacheKey(key string) string {
	return fmt.Sprintf("%s:%s", reportCachePrefix, key)
}
