package controller

import (
	"net"
	"net/http"

	"lostfound/config"
	"lostfound/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// the remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the given title key and data, adding the
// session user and panel version to every page.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()

	if user := session.GetLoginUser(c); user != nil {
		data["user"] = user.Username
		data["role"] = user.Role
	}

	c.HTML(http.StatusOK, name, data)
}
