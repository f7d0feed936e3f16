package reports

import (
	"errors"
	"net/http"
	"time"

	"construlab/database"
	"construlab/internal/api/estimate"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/access"
	"construlab/internal/domain/projects"
	"construlab/internal/domain/reports"
	"construlab/internal/i18n"
	"construlab/internal/infra/metrics"
	"construlab/internal/infra/pdf"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Renderer prints report HTML to PDF. Replaced at startup when CHROME_PATH is
// set.
var Renderer pdf.Renderer = pdf.NewChromeRenderer("")

// Request is an estimate request plus report metadata. When ProjectID names a
// saved project of the caller, its drawing replaces the inline geometry.
type Request struct {
	estimate.MaterialsRequest
	ProjectName string `json:"project_name"`
	ProjectID   string `json:"project_id"`
}

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// POST /reports/pdf
func PDF(c *gin.Context) {
	rep, name, ok := buildReport(c)
	if !ok {
		return
	}

	html, err := reports.RenderHTML(rep)
	if err != nil {
		log.WithError(err).Error("render report html")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	doc, err := Renderer.Render(c.Request.Context(), html)
	if err != nil {
		log.WithError(err).Error("render report pdf")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PDF export is temporarily unavailable"})
		return
	}

	metrics.Reports.WithLabelValues("pdf").Inc()
	c.Header("Content-Disposition", `attachment; filename="`+reports.FileName(name, "pdf")+`"`)
	c.Data(http.StatusOK, contentTypePDF, doc)
}

// POST /reports/xlsx
func XLSX(c *gin.Context) {
	rep, name, ok := buildReport(c)
	if !ok {
		return
	}

	doc, err := reports.RenderXLSX(rep)
	if err != nil {
		log.WithError(err).Error("render report xlsx")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	metrics.Reports.WithLabelValues("xlsx").Inc()
	c.Header("Content-Disposition", `attachment; filename="`+reports.FileName(name, "xlsx")+`"`)
	c.Data(http.StatusOK, contentTypeXLSX, doc)
}

// buildReport writes the error response itself and returns ok=false on
// failure.
func buildReport(c *gin.Context) (reports.Report, string, bool) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return reports.Report{}, "", false
	}

	policy := middleware.CurrentPolicy(c)
	user := middleware.CurrentUser(c)

	if req.ProjectID != "" {
		if user == nil || !policy.Can(access.CapCloudProjects) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "This feature requires a Pro subscription", "capability": access.CapCloudProjects})
			return reports.Report{}, "", false
		}
		p, err := projects.Get(database.DB, user.ID, req.ProjectID)
		if errors.Is(err, projects.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return reports.Report{}, "", false
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
			return reports.Report{}, "", false
		}
		d := p.Data.Data()
		req.Points = d.Points
		req.Scale = estimate.Number(d.Scale)
		if req.ProjectName == "" {
			req.ProjectName = p.Name
		}
	}

	res, err := estimate.Compute(req.MaterialsRequest, estimate.Presets)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reports.Report{}, "", false
	}

	in := reports.Input{
		ProjectName: req.ProjectName,
		AreaM2:      res.AreaM2,
		Quantities:  res.Quantities,
		Config:      res.Config,
		System:      res.System,
		SteelDetail: policy.Can(access.CapSteelDetail),
		GeneratedAt: time.Now(),
	}
	if user != nil && policy.Can(access.CapWhiteLabel) && user.CompanyName != nil {
		b := &reports.Branding{CompanyName: *user.CompanyName}
		if user.CompanyLogoURL != nil {
			b.LogoURL = *user.CompanyLogoURL
		}
		in.Branding = b
	}

	loc := i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"))
	return reports.Build(in, loc), req.ProjectName, true
}
