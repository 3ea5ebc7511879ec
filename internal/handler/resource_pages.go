package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// managerColumn 描述通用管理页表格中的一列
type managerColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  string `json:"kind"` // text, textarea, number, bool, image
}

// managerPage 描述一个资源管理页：所有后台资源共用 manage.html，
// 由该配置驱动表格列与编辑表单
type managerPage struct {
	Title   string
	APIPath string
	ListKey string
	Columns []managerColumn
}

func (a *API) renderManager(c *gin.Context, page managerPage) {
	a.renderHTML(c, http.StatusOK, "manage.html", gin.H{
		"title":   page.Title,
		"apiPath": page.APIPath,
		"listKey": page.ListKey,
		"columns": page.Columns,
	})
}
