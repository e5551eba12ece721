package service

import (
	"path/filepath"
	"testing"

	"lostfound/database"
	"lostfound/logger"

	"github.com/op/go-logging"
)

// setupDB initializes logging and a fresh seeded sqlite database in a
// temporary directory.
func setupDB(t *testing.T) {
	t.Helper()
	t.Setenv("LF_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	if err := database.InitDB(filepath.Join(t.TempDir(), "lostfound.db")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}
