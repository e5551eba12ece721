package controller

import (
	"net/http"
	"strconv"

	"lostfound/logger"
	"lostfound/web/service"
	"lostfound/web/session"

	"github.com/gin-gonic/gin"
)

// LostController handles listing, creating and resolving lost items.
// Every route requires a logged-in user of any role.
type LostController struct {
	BaseController

	lostItemService service.LostItemService
	uploadService   service.UploadService
}

func NewLostController(g *gin.RouterGroup) *LostController {
	a := &LostController{}
	a.initRouter(g)
	return a
}

func (a *LostController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/lost")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.GET("/new", a.newPage)
	g.POST("/new", a.create)
	g.GET("/resolve/:id", a.resolve)
}

func (a *LostController) list(c *gin.Context) {
	items, err := a.lostItemService.GetAll()
	if err != nil {
		logger.Warning("list lost items err:", err)
	}
	html(c, "lost_list.html", "pages.lost.title", gin.H{"items": items})
}

func (a *LostController) newPage(c *gin.Context) {
	html(c, "lost_new.html", "pages.lost.newTitle", nil)
}

// create stores a new lost item owned by the session user. A rejected
// or absent image degrades to an item without a picture.
func (a *LostController) create(c *gin.Context) {
	user := session.GetLoginUser(c)

	image := ""
	if fh, err := c.FormFile("image"); err == nil {
		image = a.uploadService.SaveImage(fh)
	}

	err := a.lostItemService.Create(
		user.Username,
		c.PostForm("title"),
		c.PostForm("description"),
		image,
	)
	if err != nil {
		logger.Warning("create lost item err:", err)
	}
	c.Redirect(http.StatusFound, "/lost")
}

// resolve marks an item resolved. Unknown ids are a silent no-op.
func (a *LostController) resolve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if err := a.lostItemService.Resolve(id); err != nil {
			logger.Warning("resolve lost item err:", err)
		}
	}
	c.Redirect(http.StatusFound, "/lost")
}
