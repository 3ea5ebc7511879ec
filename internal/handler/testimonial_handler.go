package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type testimonialRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Text        string `json:"text"`
	LinkedInURL string `json:"linkedinUrl"`
	AvatarURL   string `json:"avatarUrl"`
	Sort        *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

func (r testimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		Name:        r.Name,
		Role:        r.Role,
		Company:     r.Company,
		Text:        r.Text,
		LinkedInURL: r.LinkedInURL,
		AvatarURL:   r.AvatarURL,
		Sort:        r.Sort,
		IsActive:    r.IsActive,
	}
}

// ShowTestimonialManagement 渲染客户评价管理页
func (a *API) ShowTestimonialManagement(c *gin.Context) {
	a.renderManager(c, managerPage{
		Title:   "客户评价",
		APIPath: "/admin/api/testimonials",
		ListKey: "testimonials",
		Columns: []managerColumn{
			{Key: "Name", Label: "姓名", Kind: "text"},
			{Key: "Role", Label: "职位", Kind: "text"},
			{Key: "Company", Label: "公司", Kind: "text"},
			{Key: "Text", Label: "评价内容", Kind: "textarea"},
			{Key: "AvatarURL", Label: "头像", Kind: "image"},
			{Key: "SortOrder", Label: "排序", Kind: "number"},
			{Key: "IsActive", Label: "展示", Kind: "bool"},
		},
	})
}

// GetTestimonials 获取客户评价列表
func (a *API) GetTestimonials(c *gin.Context) {
	items, err := a.testimonials.List(false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取客户评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// CreateTestimonial 创建客户评价
func (a *API) CreateTestimonial(c *gin.Context) {
	var req testimonialRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.testimonials.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "创建客户评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "客户评价创建成功", "testimonial": item})
}

// UpdateTestimonial 更新客户评价
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评价ID")
		return
	}

	var req testimonialRequest
	if !bindJSON(c, &req, "请求参数不合法") {
		return
	}

	item, err := a.testimonials.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "更新客户评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "客户评价更新成功", "testimonial": item})
}

// DeleteTestimonial 删除客户评价
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评价ID")
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		respondServiceError(c, err, "删除客户评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "客户评价删除成功"})
}

// ReorderTestimonials 按给定 ID 顺序重排客户评价
func (a *API) ReorderTestimonials(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "请提供排序序列") {
		return
	}

	if err := a.testimonials.Reorder(req.IDs); err != nil {
		respondServiceError(c, err, "重排客户评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
