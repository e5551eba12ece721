package controller

import (
	"net/http"
	"strconv"

	"lostfound/logger"
	"lostfound/web/service"
	"lostfound/web/session"

	"github.com/gin-gonic/gin"
)

// FoundController handles the staff-only found-item routes.
type FoundController struct {
	BaseController

	foundItemService service.FoundItemService
	uploadService    service.UploadService
}

func NewFoundController(g *gin.RouterGroup) *FoundController {
	a := &FoundController{}
	a.initRouter(g)
	return a
}

func (a *FoundController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/found")
	g.Use(a.checkStaff)

	g.GET("", a.list)
	g.GET("/new", a.newPage)
	g.POST("/new", a.create)
	g.GET("/return/:id", a.returnItem)
}

func (a *FoundController) list(c *gin.Context) {
	items, err := a.foundItemService.GetAll()
	if err != nil {
		logger.Warning("list found items err:", err)
	}
	html(c, "found_list.html", "pages.found.title", gin.H{"items": items})
}

func (a *FoundController) newPage(c *gin.Context) {
	html(c, "found_new.html", "pages.found.newTitle", nil)
}

func (a *FoundController) create(c *gin.Context) {
	user := session.GetLoginUser(c)

	image := ""
	if fh, err := c.FormFile("image"); err == nil {
		image = a.uploadService.SaveImage(fh)
	}

	err := a.foundItemService.Create(
		user.Username,
		c.PostForm("title"),
		c.PostForm("description"),
		image,
	)
	if err != nil {
		logger.Warning("create found item err:", err)
	}
	c.Redirect(http.StatusFound, "/found")
}

// returnItem marks an item returned. Unknown ids are a silent no-op.
func (a *FoundController) returnItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if err := a.foundItemService.Return(id); err != nil {
			logger.Warning("return found item err:", err)
		}
	}
	c.Redirect(http.StatusFound, "/found")
}
