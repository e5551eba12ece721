package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lostfound/config"

	"github.com/gin-gonic/gin"
)

// UploadController serves previously uploaded images, path-confined to
// the upload folder. No auth: filenames are the only gate, as in the
// original system.
type UploadController struct {
	BaseController
}

func NewUploadController(g *gin.RouterGroup) *UploadController {
	a := &UploadController{}
	a.initRouter(g)
	return a
}

func (a *UploadController) initRouter(g *gin.RouterGroup) {
	g.GET("/uploads/*filepath", a.serve)
}

// serve streams an uploaded file inline. Traversal attempts and missing
// files are both a plain 404.
func (a *UploadController) serve(c *gin.Context) {
	name := c.Param("filepath")

	dir, err := filepath.Abs(config.GetUploadFolder())
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	// Clean relative to root so ".." cannot climb out of the folder.
	full := filepath.Join(dir, filepath.Clean("/"+name))

	if !confined(dir, full) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(full)
}

// confined reports whether path stays inside dir after resolving
// symlinks. A path that does not exist yet is never confined.
func confined(dir string, path string) bool {
	resolvedDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	if resolved == resolvedDir {
		return false
	}
	return strings.HasPrefix(resolved, resolvedDir+string(os.PathSeparator))
}
