package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	WebpURL     string   `json:"webpUrl"`
	DemoURL     string   `json:"demoUrl"`
	GitHubURL   string   `json:"githubUrl"`
	Sort        *int     `json:"order"`
	IsActive    *bool    `json:"isActive"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:       r.Title,
		Category:    r.Category,
		Categories:  r.Categories,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		WebpURL:     r.WebpURL,
		DemoURL:     r.DemoURL,
		GitHubURL:   r.GitHubURL,
		Sort:        r.Sort,
		IsActive:    r.IsActive,
	}
}

type reorderRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// ShowProjectManagement 渲染项目管理页
func (a *API) ShowProjectManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "作品集项目",
		APIPath: "/admin/api/projects",
		ListKey: "projects",
		Columns: []managerColumn{
			{Key: "Title", Label: "标题", Kind: "text"},
			{Key: "Category", Label: "主分类", Kind: "text"},
			{Key: "Description", Label: "描述", Kind: "textarea"},
			{Key: "ImageURL", Label: "封面图", Kind: "image"},
			{Key: "WebpURL", Label: "WebP 图", Kind: "image"},
			{Key: "DemoURL", Label: "演示链接", Kind: "text"},
			{Key: "GitHubURL", Label: "GitHub", Kind: "text"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
			{Key: "IsActive", Label: "展示", Kind: "bool"},
		},
	})
}

// GetProjects 获取项目列表，始终按排序值返回完整重排后的集合
func (a *API) GetProjects(c *gin.Context) {
	items, err := a.projects.List(false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取项目列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": items})
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.projects.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建项目失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目创建成功", "project": item})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req projectRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.projects.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新项目失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目更新成功", "project": item})
}

// DeleteProject 删除项目；删除不存在的 ID 会明确返回 404
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		respondServiceError(c, err, "删除项目失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目删除成功"})
}

// ReorderProjects 按给定 ID 顺序重排项目
func (a *API) ReorderProjects(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.projects.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排项目失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
