package job

import (
	"os"
	"path/filepath"
	"testing"

	"lostfound/database"
	"lostfound/database/model"
	"lostfound/logger"

	"github.com/op/go-logging"
)

func TestCheckUploadsJobRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LF_UPLOAD_FOLDER", dir)
	t.Setenv("LF_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	if err := database.InitDB(filepath.Join(t.TempDir(), "lostfound.db")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})

	// One row with its file present, one drifted.
	if err := os.WriteFile(filepath.Join(dir, "present.png"), []byte("img"), 0o640); err != nil {
		t.Fatal(err)
	}
	db := database.GetDB()
	items := []model.LostItem{
		{Owner: "alice", Title: "Hat", Image: "present.png"},
		{Owner: "alice", Title: "Scarf", Image: "gone.png"},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatal(err)
	}

	// The audit only logs; it must complete and mutate nothing.
	NewCheckUploadsJob().Run()

	var after model.LostItem
	if err := db.Where("title = ?", "Scarf").First(&after).Error; err != nil {
		t.Fatal(err)
	}
	if after.Image != "gone.png" {
		t.Errorf("audit mutated row: image = %q", after.Image)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	if fileExists(path) {
		t.Error("missing file reported as existing")
	}
	if err := os.WriteFile(path, []byte("x"), 0o640); err != nil {
		t.Fatal(err)
	}
	if !fileExists(path) {
		t.Error("existing file reported as missing")
	}
	if fileExists(dir) {
		t.Error("directory reported as file")
	}
}
