package controller

import (
	"net/http"
	"strings"

	"lostfound/logger"
	"lostfound/web/locale"
	"lostfound/web/service"
	"lostfound/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// IndexController handles the landing page and login/logout routes.
type IndexController struct {
	BaseController

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// index shows the landing page with the username when logged in.
func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", "pages.index.title", nil)
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "pages.login.title", nil)
}

// login validates credentials and establishes the session. Failures get
// one generic message regardless of which field was wrong.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "pages.login.title", gin.H{
			"error": locale.I18n("pages.login.invalidCredentials"),
		})
		return
	}

	username := strings.TrimSpace(form.Username)
	password := strings.TrimSpace(form.Password)

	user := a.userService.CheckUser(username, password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", username, getRemoteIp(c))
		html(c, "login.html", "pages.login.title", gin.H{
			"error": locale.I18n("pages.login.invalidCredentials"),
		})
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/")
}

// logout clears the whole session and redirects home.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
