package assistant

type CleanupFilesResp struct {
	DeletedCount int64    `json:"deletedCount"`
	TotalExpired int64    `json:"totalExpired"`
	Errors       []string `json:"errors,omitempty"`
}

type StorageStatsResp struct {
	TotalFiles     int64   `json:"totalFiles"`
	TotalSizeMB    float64 `json:"totalSizeMb"`
	RecentFiles    int64   `json:"recentFiles"`
	OldFiles       int64   `json:"oldFiles"`
	StorageHealthy bool    `json:"storageHealthy"`
}

type HealthResp struct {
	DatabaseHealthy bool   `json:"databaseHealthy"`
	RedisHealthy    bool   `json:"redisHealthy"`
	AIHealthy       bool   `json:"aiHealthy"`
	Detail          string `json:"detail,omitempty"`
}
