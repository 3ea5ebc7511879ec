package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats 返回仪表盘计数
func (a *API) GetDashboardStats(c *gin.Context) {
	stats, err := a.dashboard.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取统计数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"projects":       stats.Projects,
		"testimonials":   stats.Testimonials,
		"skills":         stats.Skills,
		"services":       stats.Services,
		"clients":        stats.Clients,
		"unreadMessages": stats.UnreadMessages,
	}})
}

// GetProfileHealth 返回资料完整度百分比
func (a *API) GetProfileHealth(c *gin.Context) {
	profile, err := a.profiles.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取资料完整度失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"health": service.HealthScore(profile)})
}

// GetRecentActivity 返回最近的内容变更记录
func (a *API) GetRecentActivity(c *gin.Context) {
	items, err := a.dashboard.RecentActivity()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取活动记录失败")
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		response = append(response, gin.H{
			"id":        item.ID,
			"type":      item.Type,
			"name":      item.Name,
			"createdAt": item.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"activity": response})
}

type toggleSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value bool   `json:"value"`
}

// ToggleSetting 切换控制中心暴露的布尔站点设置
func (a *API) ToggleSetting(c *gin.Context) {
	var req toggleSettingRequest
	if !bindJSON(c, &req, "请指定要切换的设置项") {
		return
	}

	if err := a.settings.Toggle(req.Key, req.Value); err != nil {
		if errors.Is(err, service.ErrUnknownSettingKey) {
			respondError(c, http.StatusBadRequest, "不支持切换该设置项")
			return
		}
		respondError(c, http.StatusInternalServerError, "保存设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "设置已更新", "key": req.Key, "value": req.Value})
}
