package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type serviceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	Category    string `json:"category"`
	Sort        *int   `json:"order"`
}

func (r serviceRequest) toInput() service.ServiceInput {
	return service.ServiceInput{
		Title:       r.Title,
		Description: r.Description,
		IconURL:     r.IconURL,
		Category:    r.Category,
		Sort:        r.Sort,
	}
}

// ShowServiceManagement 渲染服务条目管理页
func (a *API) ShowServiceManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "服务与个人项目",
		APIPath: "/admin/api/services",
		ListKey: "services",
		Columns: []managerColumn{
			{Key: "Title", Label: "标题", Kind: "text"},
			{Key: "Description", Label: "描述", Kind: "textarea"},
			{Key: "IconURL", Label: "图标", Kind: "image"},
			{Key: "Category", Label: "栏目", Kind: "text"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
		},
	})
}

// GetServices 获取服务条目列表，支持 category 查询参数过滤
func (a *API) GetServices(c *gin.Context) {
	items, err := a.catalog.List(c.Query("category"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取服务列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": items})
}

// CreateService 创建服务条目
func (a *API) CreateService(c *gin.Context) {
	var req serviceRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.catalog.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建服务失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "服务创建成功", "service": item})
}

// UpdateService 更新服务条目
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	var req serviceRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.catalog.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新服务失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "服务更新成功", "service": item})
}

// DeleteService 删除服务条目
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	if err := a.catalog.Delete(id); err != nil {
		respondServiceError(c, err, "删除服务失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "服务删除成功"})
}

// ReorderServices 按给定 ID 顺序重排服务条目
func (a *API) ReorderServices(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.catalog.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排服务失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
