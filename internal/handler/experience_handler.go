package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type experienceRequest struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Sort        *int   `json:"order"`
}

func (r experienceRequest) toInput() service.ExperienceInput {
	return service.ExperienceInput{
		JobTitle:    r.JobTitle,
		Company:     r.Company,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
		Sort:        r.Sort,
	}
}

// ShowExperienceManagement 渲染工作经历管理页
func (a *API) ShowExperienceManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "工作经历",
		APIPath: "/admin/api/experience",
		ListKey: "experience",
		Columns: []managerColumn{
			{Key: "JobTitle", Label: "职位", Kind: "text"},
			{Key: "Company", Label: "公司", Kind: "text"},
			{Key: "StartDate", Label: "开始时间", Kind: "text"},
			{Key: "EndDate", Label: "结束时间", Kind: "text"},
			{Key: "Description", Label: "描述", Kind: "textarea"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
		},
	})
}

// GetExperience 获取工作经历列表
func (a *API) GetExperience(c *gin.Context) {
	items, err := a.experience.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取工作经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"experience": items})
}

// CreateExperience 创建工作经历
func (a *API) CreateExperience(c *gin.Context) {
	var req experienceRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.experience.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建工作经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "工作经历创建成功", "experience": item})
}

// UpdateExperience 更新工作经历
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	var req experienceRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.experience.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新工作经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "工作经历更新成功", "experience": item})
}

// DeleteExperience 删除工作经历
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	if err := a.experience.Delete(id); err != nil {
		respondServiceError(c, err, "删除工作经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "工作经历删除成功"})
}

// ReorderExperience 按给定 ID 顺序重排工作经历
func (a *API) ReorderExperience(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.experience.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排工作经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
