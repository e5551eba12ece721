// Package job contains scheduled maintenance jobs for the panel.
package job

import (
	"os"
	"path/filepath"

	"lostfound/config"
	"lostfound/logger"
	"lostfound/web/service"
)

// CheckUploadsJob audits item rows whose image file no longer exists in
// the upload folder. Rows and files can drift independently (there is
// no foreign key between them); this job only logs, it never mutates.
type CheckUploadsJob struct {
	lostItemService  service.LostItemService
	foundItemService service.FoundItemService
}

func NewCheckUploadsJob() *CheckUploadsJob {
	return new(CheckUploadsJob)
}

func (j *CheckUploadsJob) Run() {
	dir := config.GetUploadFolder()
	missing := 0

	lost, err := j.lostItemService.GetAll()
	if err != nil {
		logger.Warning("uploads audit: list lost items err:", err)
		return
	}
	for _, item := range lost {
		if item.Image != "" && !fileExists(filepath.Join(dir, item.Image)) {
			logger.Warningf("uploads audit: lost item %d references missing file %q", item.Id, item.Image)
			missing++
		}
	}

	found, err := j.foundItemService.GetAll()
	if err != nil {
		logger.Warning("uploads audit: list found items err:", err)
		return
	}
	for _, item := range found {
		if item.Image != "" && !fileExists(filepath.Join(dir, item.Image)) {
			logger.Warningf("uploads audit: found item %d references missing file %q", item.Id, item.Image)
			missing++
		}
	}

	if missing == 0 {
		logger.Debug("uploads audit: no drifted image references")
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
