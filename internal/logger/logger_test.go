package logger

import (
	"path/filepath"
	"testing"

	logrus "github.com/sirupsen/logrus"

	"chakula/internal/config"
)

func TestSetupAppliesConfiguredLevel(t *testing.T) {
	dir := t.TempDir()

	Setup(&config.Config{LogFile: filepath.Join(dir, "app.log"), LogLevel: "warn"})
	if logrus.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", logrus.GetLevel())
	}

	Setup(&config.Config{LogFile: filepath.Join(dir, "app.log"), LogLevel: "nonsense"})
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug fallback", logrus.GetLevel())
	}
}
