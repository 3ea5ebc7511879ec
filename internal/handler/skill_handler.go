package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type skillRequest struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category"`
	IconURL    string `json:"iconUrl"`
	Sort       *int   `json:"order"`
}

func (r skillRequest) toInput() service.SkillInput {
	return service.SkillInput{
		Name:       r.Name,
		Percentage: r.Percentage,
		Category:   r.Category,
		IconURL:    r.IconURL,
		Sort:       r.Sort,
	}
}

// ShowSkillManagement 渲染技能管理页
func (a *API) ShowSkillManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "技能",
		APIPath: "/admin/api/skills",
		ListKey: "skills",
		Columns: []managerColumn{
			{Key: "Name", Label: "名称", Kind: "text"},
			{Key: "Percentage", Label: "熟练度", Kind: "number"},
			{Key: "Category", Label: "分类", Kind: "text"},
			{Key: "IconURL", Label: "图标", Kind: "image"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
		},
	})
}

// GetSkills 获取技能列表
func (a *API) GetSkills(c *gin.Context) {
	items, err := a.skills.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取技能列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": items})
}

// CreateSkill 创建技能
func (a *API) CreateSkill(c *gin.Context) {
	var req skillRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.skills.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建技能失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能创建成功", "skill": item})
}

// UpdateSkill 更新技能
func (a *API) UpdateSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	var req skillRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.skills.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新技能失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能更新成功", "skill": item})
}

// DeleteSkill 删除技能
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	if err := a.skills.Delete(id); err != nil {
		respondServiceError(c, err, "删除技能失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能删除成功"})
}

// ReorderSkills 按给定 ID 顺序重排技能
func (a *API) ReorderSkills(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.skills.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排技能失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
