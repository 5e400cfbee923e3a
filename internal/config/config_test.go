package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "KAFKA_BROKERS", "TOKEN_TTL_HOURS", "RESTOCK_ON_CANCEL", "ALERTS_WORKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if len(cfg.KafkaBrokers) != 1 || cfg.KafkaBrokers[0] != "kafka:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.RestockOnCancel {
		t.Error("RestockOnCancel should default to off")
	}
	if cfg.AlertsWorkers != 4 {
		t.Errorf("AlertsWorkers = %d", cfg.AlertsWorkers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("RESTOCK_ON_CANCEL", "true")

	cfg := Load()

	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "k1:9092" || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if !cfg.RestockOnCancel {
		t.Error("RestockOnCancel should be on")
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "soon")
	t.Setenv("RESTOCK_ON_CANCEL", "maybe")
	t.Setenv("ALERTS_WORKERS", "")

	cfg := Load()

	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.RestockOnCancel {
		t.Error("unparseable bool should keep the default")
	}
	if cfg.AlertsWorkers != 4 {
		t.Errorf("AlertsWorkers = %d", cfg.AlertsWorkers)
	}
}
