package engine

import (
	"os"
	"testing"

	"tactics-server/pkg/logger"
)

// TestMain runs before all tests in this package
func TestMain(m *testing.M) {
	// Initialize the global logger so tests don't panic on nil logger
	logger.Init()

	os.Exit(m.Run())
}
