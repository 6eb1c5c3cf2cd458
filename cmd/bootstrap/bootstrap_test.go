package bootstrap

import (
	"testing"

	"clinic-records/config"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := NewLogger(config.LogConfig{Level: tt.level})
			if log.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", log.GetLevel(), tt.want)
			}
			if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
				t.Errorf("formatter = %T", log.Formatter)
			}
		})
	}
}
