package controller

import (
	"lostfound/logger"
	"lostfound/web/service"

	"github.com/gin-gonic/gin"
)

// SearchController lets any logged-in user search found-item listings.
type SearchController struct {
	BaseController

	foundItemService service.FoundItemService
}

func NewSearchController(g *gin.RouterGroup) *SearchController {
	a := &SearchController{}
	a.initRouter(g)
	return a
}

func (a *SearchController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/search")
	g.Use(a.checkLogin)

	g.GET("", a.searchPage)
	g.POST("", a.search)
}

func (a *SearchController) searchPage(c *gin.Context) {
	html(c, "search.html", "pages.search.title", gin.H{"q": ""})
}

func (a *SearchController) search(c *gin.Context) {
	q := c.PostForm("q")
	results, err := a.foundItemService.Search(q)
	if err != nil {
		logger.Warning("search found items err:", err)
	}
	html(c, "search.html", "pages.search.title", gin.H{
		"q":        q,
		"results":  results,
		"searched": true,
	})
}
