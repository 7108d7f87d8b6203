package observability

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	logger := NewLogger("debug", "json")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogger("extremely-loud", "json")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewLogger_Format(t *testing.T) {
	assert.IsType(t, &logrus.TextFormatter{}, NewLogger("info", "text").Formatter)
	assert.IsType(t, &logrus.JSONFormatter{}, NewLogger("info", "json").Formatter)
	assert.IsType(t, &logrus.JSONFormatter{}, NewLogger("info", "").Formatter)
}
