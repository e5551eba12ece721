// Package controller provides the HTTP request handlers of the
// lost-and-found panel: login/logout, lost and found item management,
// search and upload serving.
package controller

import (
	"net/http"

	"lostfound/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the route guards shared by all controllers.
type BaseController struct{}

// checkLogin redirects unauthenticated callers to the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// checkStaff redirects non-staff callers to the landing page. Must not
// fault when the session carries no user at all.
func (a *BaseController) checkStaff(c *gin.Context) {
	if !session.IsStaff(c) {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.Next()
}
