package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type profileRequest struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AltPhone        string `json:"altPhone"`
	Location        string `json:"location"`
	Bio             string `json:"bio"`
	AvatarURL       string `json:"avatarUrl"`
	ProfileVideoURL string `json:"profileVideoUrl"`
	GitHub          string `json:"github"`
	LinkedIn        string `json:"linkedin"`
	WhatsApp        string `json:"whatsapp"`
	CVURL           string `json:"cvUrl"`
}

func (r profileRequest) toInput() service.ProfileInput {
	return service.ProfileInput{
		Name:            r.Name,
		Title:           r.Title,
		Email:           r.Email,
		Phone:           r.Phone,
		AltPhone:        r.AltPhone,
		Location:        r.Location,
		Bio:             r.Bio,
		AvatarURL:       r.AvatarURL,
		ProfileVideoURL: r.ProfileVideoURL,
		GitHub:          r.GitHub,
		LinkedIn:        r.LinkedIn,
		WhatsApp:        r.WhatsApp,
		CVURL:           r.CVURL,
	}
}

// ShowProfileEditor 渲染个人资料编辑页
func (a *API) ShowProfileEditor(c *gin.Context) {
	profile, err := a.profiles.Get()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "profile.html", gin.H{
			"title": "个人资料",
			"error": "加载个人资料失败",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "profile.html", gin.H{
		"title":   "个人资料",
		"profile": profile,
		"health":  service.HealthScore(profile),
	})
}

// GetProfile 返回个人资料单例
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取个人资料失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile 校验并保存个人资料
func (a *API) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	profile, err := a.profiles.Update(req.toInput())
	if err != nil {
		respondServiceError(c, err, "保存个人资料失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "个人资料已保存", "profile": profile})
}
