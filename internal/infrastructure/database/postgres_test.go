package database

import (
	"testing"

	"clinic-records/config"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DBConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "require"})
	want := "host=db user=u password=p dbname=n port=5433 sslmode=require"
	if got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestGormLogLevel(t *testing.T) {
	tests := []struct {
		in   logrus.Level
		want logger.LogLevel
	}{
		{logrus.TraceLevel, logger.Info},
		{logrus.DebugLevel, logger.Info},
		{logrus.InfoLevel, logger.Warn},
		{logrus.WarnLevel, logger.Warn},
		{logrus.ErrorLevel, logger.Error},
	}
	for _, tt := range tests {
		if got := gormLogLevel(tt.in); got != tt.want {
			t.Errorf("gormLogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
