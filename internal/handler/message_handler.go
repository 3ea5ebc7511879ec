package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// SubmitContact 处理前台联系表单提交，无需登录
// 始终返回 {success, error?} 结构，校验失败时携带首个违规字段的提示
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请求参数不合法"})
		return
	}

	_, err := a.messages.Submit(service.ContactInput{
		Fullname: req.Fullname,
		Email:    req.Email,
		Message:  req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": service.InputMessage(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "发送失败，请稍后重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ShowInbox 渲染收件箱页面
func (a *API) ShowInbox(c *gin.Context) {
	items, err := a.messages.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "messages.html", gin.H{
			"title": "收件箱",
			"error": "加载消息失败",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "messages.html", gin.H{
		"title":    "收件箱",
		"messages": items,
	})
}

// GetMessages 获取最新消息列表（最多 50 条）
func (a *API) GetMessages(c *gin.Context) {
	items, err := a.messages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取消息列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": items})
}

type messageReadRequest struct {
	IsRead *bool `json:"isRead" binding:"required"`
}

// SetMessageRead 切换消息的已读状态
func (a *API) SetMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的消息ID")
		return
	}

	var req messageReadRequest
	if !bindJSON(c, &req, "请指定已读状态") {
		return
	}

	item, err := a.messages.SetRead(id, *req.IsRead)
	if err != nil {
		respondServiceError(c, err, "更新消息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "消息状态已更新", "item": item})
}

// DeleteMessage 删除消息
func (a *API) DeleteMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的消息ID")
		return
	}

	if err := a.messages.Delete(id); err != nil {
		respondServiceError(c, err, "删除消息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "消息删除成功"})
}
