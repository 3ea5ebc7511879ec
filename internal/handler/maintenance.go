package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MaintenanceGate 在维护模式开启时拦截公开页面
// 已登录管理员不受影响，读取设置失败时视为未开启维护
func (a *API) MaintenanceGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := a.settings.GetSettings()
		if err != nil {
			c.Error(err)
			c.Next()
			return
		}

		if settings.MaintenanceMode && !hasSession(c) {
			a.renderHTML(c, http.StatusServiceUnavailable, "maintenance.html", gin.H{
				"title": "维护中",
				"year":  time.Now().Year(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
