package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type educationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Sort        *int   `json:"order"`
}

func (r educationRequest) toInput() service.EducationInput {
	return service.EducationInput{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Sort:        r.Sort,
	}
}

// ShowEducationManagement 渲染教育经历管理页
func (a *API) ShowEducationManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "教育经历",
		APIPath: "/admin/api/education",
		ListKey: "education",
		Columns: []managerColumn{
			{Key: "Institution", Label: "学校", Kind: "text"},
			{Key: "Degree", Label: "学位", Kind: "text"},
			{Key: "Field", Label: "专业", Kind: "text"},
			{Key: "StartDate", Label: "开始时间", Kind: "text"},
			{Key: "EndDate", Label: "结束时间", Kind: "text"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
		},
	})
}

// GetEducation 获取教育经历列表
func (a *API) GetEducation(c *gin.Context) {
	items, err := a.education.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取教育经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"education": items})
}

// CreateEducation 创建教育经历
func (a *API) CreateEducation(c *gin.Context) {
	var req educationRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.education.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建教育经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "教育经历创建成功", "education": item})
}

// UpdateEducation 更新教育经历
func (a *API) UpdateEducation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	var req educationRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.education.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新教育经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "教育经历更新成功", "education": item})
}

// DeleteEducation 删除教育经历
func (a *API) DeleteEducation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	if err := a.education.Delete(id); err != nil {
		respondServiceError(c, err, "删除教育经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "教育经历删除成功"})
}

// ReorderEducation 按给定 ID 顺序重排教育经历
func (a *API) ReorderEducation(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.education.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排教育经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
