package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type clientRequest struct {
	Name     string `json:"name"`
	LogoURL  string `json:"logoUrl"`
	Sort     *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

func (r clientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:     r.Name,
		LogoURL:  r.LogoURL,
		Sort:     r.Sort,
		IsActive: r.IsActive,
	}
}

// ShowClientManagement 渲染客户 Logo 管理页
func (a *API) ShowClientManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "合作客户",
		APIPath: "/admin/api/clients",
		ListKey: "clients",
		Columns: []managerColumn{
			{Key: "Name", Label: "名称", Kind: "text"},
			{Key: "LogoURL", Label: "Logo", Kind: "image"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
			{Key: "IsActive", Label: "展示", Kind: "bool"},
		},
	})
}

// GetClients 获取客户列表
func (a *API) GetClients(c *gin.Context) {
	items, err := a.clients.List(false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取客户列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": items})
}

// CreateClient 创建客户
func (a *API) CreateClient(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.clients.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建客户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "客户创建成功", "client": item})
}

// UpdateClient 更新客户
func (a *API) UpdateClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的客户ID")
		return
	}

	var req clientRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.clients.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新客户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "客户更新成功", "client": item})
}

// DeleteClient 删除客户
func (a *API) DeleteClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的客户ID")
		return
	}

	if err := a.clients.Delete(id); err != nil {
		respondServiceError(c, err, "删除客户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "客户删除成功"})
}

// ReorderClients 按给定 ID 顺序重排客户
func (a *API) ReorderClients(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.clients.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排客户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
