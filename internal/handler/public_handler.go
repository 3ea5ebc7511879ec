package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// homePageData 聚合首页所需的全部数据
type homePageData struct {
	Profile      db.Profile
	Services     []db.Service
	Ventures     []db.Service
	Projects     []db.Project
	SkillGroups  []string
	Skills       map[string][]db.Skill
	Experience   []db.Experience
	Education    []db.Education
	Testimonials []db.Testimonial
	Clients      []db.Client
}

// ShowHome 渲染公开首页，各区块并行加载
// 区块开关关闭时对应区块直接留空，不再查询
func (a *API) ShowHome(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		c.Error(err)
	}

	var data homePageData
	g := new(errgroup.Group)

	g.Go(func() error {
		profile, err := a.profiles.Get()
		if err != nil {
			return err
		}
		data.Profile = profile
		return nil
	})

	if settings.ShowServices {
		g.Go(func() error {
			items, err := a.catalog.List(db.ServiceCategoryService)
			if err != nil {
				return err
			}
			data.Services = items
			return nil
		})
		g.Go(func() error {
			items, err := a.catalog.List(db.ServiceCategoryVenture)
			if err != nil {
				return err
			}
			data.Ventures = items
			return nil
		})
	}

	if settings.ShowProjects {
		g.Go(func() error {
			items, err := a.projects.List(true)
			if err != nil {
				return err
			}
			data.Projects = items
			return nil
		})
	}

	g.Go(func() error {
		groups, skills, err := a.skills.ListByCategory()
		if err != nil {
			return err
		}
		data.SkillGroups = groups
		data.Skills = skills
		return nil
	})

	g.Go(func() error {
		items, err := a.experience.List()
		if err != nil {
			return err
		}
		data.Experience = items
		return nil
	})

	g.Go(func() error {
		items, err := a.education.List()
		if err != nil {
			return err
		}
		data.Education = items
		return nil
	})

	if settings.ShowTestimonials {
		g.Go(func() error {
			items, err := a.testimonials.List(true)
			if err != nil {
				return err
			}
			data.Testimonials = items
			return nil
		})
	}

	g.Go(func() error {
		items, err := a.clients.List(true)
		if err != nil {
			return err
		}
		data.Clients = items
		return nil
	})

	if err := g.Wait(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "home.html", gin.H{
			"title": "首页",
			"error": "页面加载失败",
			"year":  time.Now().Year(),
		})
		return
	}

	bio, err := renderMarkdown(data.Profile.Bio)
	if err != nil {
		c.Error(err)
		bio = template.HTML("")
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":              "首页",
		"profile":            data.Profile,
		"bio":                bio,
		"services":           data.Services,
		"ventures":           data.Ventures,
		"projects":           data.Projects,
		"skillGroups":        data.SkillGroups,
		"skills":             data.Skills,
		"experience":         data.Experience,
		"education":          data.Education,
		"testimonials":       data.Testimonials,
		"clients":            data.Clients,
		"icons":              view.SocialIconSVGMap(),
		"showResumeDownload": settings.ShowResumeDownload && data.Profile.CVURL != "",
		"contactEmail":       settings.ContactEmail,
		"year":               time.Now().Year(),
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
