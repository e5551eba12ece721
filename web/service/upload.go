package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"lostfound/config"
	"lostfound/logger"
	"lostfound/util/filename"
)

// MaxUploadSize caps attached images at 20 MiB.
const MaxUploadSize = 20 << 20

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

type UploadService struct{}

// SaveImage validates and persists an uploaded image, returning the
// sanitized filename to store on the item, or "" when no usable file
// was attached. Validation failures degrade to "no image": the caller
// still creates the item. Name collisions silently overwrite.
func (s *UploadService) SaveImage(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}

	if fh.Size > MaxUploadSize {
		logger.Debugf("upload rejected: %q exceeds size cap", fh.Filename)
		return ""
	}
	if !allowedExtensions[filename.Ext(fh.Filename)] {
		logger.Debugf("upload rejected: %q has disallowed extension", fh.Filename)
		return ""
	}

	name := filename.Sanitize(fh.Filename)
	if name == "" {
		return ""
	}

	dir := config.GetUploadFolder()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		logger.Warning("create upload folder err:", err)
		return ""
	}

	src, err := fh.Open()
	if err != nil {
		logger.Warning("open uploaded file err:", err)
		return ""
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		logger.Warning("create upload file err:", err)
		return ""
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logger.Warning("write upload file err:", err)
		return ""
	}
	return name
}
