package projects

import (
	"errors"
	"net/http"
	"time"

	"construlab/database"
	"construlab/internal/domain/projects"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ProjectDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Data      projects.Data `json:"data"`
	AreaM2    float64       `json:"area_m2"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ProjectSummaryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AreaM2    float64   `json:"area_m2"`
	Points    int       `json:"points"`
	UpdatedAt time.Time `json:"updated_at"`
}

type saveRequest struct {
	Name string        `json:"name"`
	Data projects.Data `json:"data"`
}

func toDTO(p *projects.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID,
		Name:      p.Name,
		Data:      p.Data.Data(),
		AreaM2:    p.AreaM2(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, projects.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, projects.ErrNameRequired),
		errors.Is(err, projects.ErrTooFewPoints),
		errors.Is(err, projects.ErrInvalidScale):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("project store")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to access projects"})
	}
}

// GET /projects
func List(c *gin.Context) {
	list, err := projects.List(database.DB, c.GetUint("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ProjectSummaryDTO, 0, len(list))
	for i := range list {
		p := &list[i]
		out = append(out, ProjectSummaryDTO{
			ID:        p.ID,
			Name:      p.Name,
			AreaM2:    p.AreaM2(),
			Points:    len(p.Data.Data().Points),
			UpdatedAt: p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /projects/:id
func Get(c *gin.Context) {
	p, err := projects.Get(database.DB, c.GetUint("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(p))
}

// POST /projects
func Create(c *gin.Context) {
	save(c, "", http.StatusCreated)
}

// PUT /projects/:id
func Update(c *gin.Context) {
	save(c, c.Param("id"), http.StatusOK)
}

func save(c *gin.Context, id string, status int) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	p, err := projects.Save(database.DB, c.GetUint("user_id"), id, req.Name, req.Data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, toDTO(p))
}

// DELETE /projects/:id
func Delete(c *gin.Context) {
	if err := projects.Delete(database.DB, c.GetUint("user_id"), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
