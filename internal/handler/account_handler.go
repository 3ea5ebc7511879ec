package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type usernameChangeRequest struct {
	NewUsername     string `json:"newUsername"`
	CurrentPassword string `json:"currentPassword"`
}

// UpdatePassword 修改当前登录用户的密码
func (a *API) UpdatePassword(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "未登录或会话已过期")
		return
	}

	var req passwordChangeRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	err := a.accounts.ChangePassword(userID, service.PasswordChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			respondError(c, http.StatusBadRequest, "当前密码不正确")
		case errors.Is(err, service.ErrPasswordMismatch):
			respondError(c, http.StatusBadRequest, "两次输入的新密码不一致")
		default:
			respondServiceError(c, err, "修改密码失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}

// UpdateUsername 修改当前登录用户的用户名，修改后更新会话
func (a *API) UpdateUsername(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "未登录或会话已过期")
		return
	}

	var req usernameChangeRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	user, err := a.accounts.ChangeUsername(userID, service.UsernameChangeInput{
		NewUsername:     req.NewUsername,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			respondError(c, http.StatusBadRequest, "当前密码不正确")
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusBadRequest, "该用户名已被占用")
		default:
			respondServiceError(c, err, "修改用户名失败")
		}
		return
	}

	session := sessions.Default(c)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "用户名修改成功", "username": user.Username})
}
