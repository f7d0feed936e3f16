package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Setup("info", "development") })

	Setup("debug", "production")
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %s", log.GetLevel())
	}
	if _, ok := log.StandardLogger().Formatter.(*log.JSONFormatter); !ok {
		t.Fatalf("expected JSON formatter in production")
	}

	Setup("nonsense", "development")
	if log.GetLevel() != log.InfoLevel {
		t.Fatalf("expected info fallback, got %s", log.GetLevel())
	}
	if _, ok := log.StandardLogger().Formatter.(*log.TextFormatter); !ok {
		t.Fatalf("expected text formatter outside production")
	}
}
