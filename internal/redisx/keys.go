package redisx

import "time"

const (
	// Dashboard aggregate cache: dashboard:stats -> serialized stats
	KeyDashboardStats = "dashboard:stats"

	// Low-stock alert suppression: alert:lowstock:{product_id}
	KeyLowStockAlert = "alert:lowstock:%d"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLDashboardStats = 30 * time.Second
	TTLLowStockAlert  = 6 * time.Hour
	TTLDedup          = 48 * time.Hour
)
