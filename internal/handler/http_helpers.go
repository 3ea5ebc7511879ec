package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondServiceError 将服务层错误映射为统一的失败响应：
// 校验失败返回首个违规字段的提示，资源缺失返回 404，其余归为 fallback。
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, service.InputMessage(err))
	case errors.Is(err, service.ErrInvalidOrder):
		respondError(c, http.StatusBadRequest, "排序序列不合法")
	case errors.Is(err, service.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, "指定的记录不存在")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
