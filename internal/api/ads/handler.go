package ads

import (
	"net/http"

	"construlab/config"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/access"

	"github.com/gin-gonic/gin"
)

type Slot struct {
	Name        string `json:"name"`
	SlotID      string `json:"slot_id,omitempty"`
	Placeholder bool   `json:"placeholder"`
}

type SlotsResponse struct {
	Enabled     bool   `json:"enabled"`
	PublisherID string `json:"publisher_id,omitempty"`
	Slots       []Slot `json:"slots"`
}

// BuildSlots decides what the client may render. Outside production the
// slots are inert placeholders so no real impressions are served.
func BuildSlots(policy access.Policy) SlotsResponse {
	if policy.Can(access.CapAdFree) || policy.State == access.AccessBanned {
		return SlotsResponse{Enabled: false, Slots: []Slot{}}
	}

	names := []struct{ name, id string }{
		{"header", config.ADSENSE_SLOT_HEADER},
		{"inline", config.ADSENSE_SLOT_INLINE},
		{"sidebar", config.ADSENSE_SLOT_SIDEBAR},
	}

	live := config.IsProduction() && config.ADSENSE_PUBLISHER_ID != ""
	resp := SlotsResponse{Enabled: true, Slots: make([]Slot, 0, len(names))}
	if live {
		resp.PublisherID = config.ADSENSE_PUBLISHER_ID
	}
	for _, n := range names {
		s := Slot{Name: n.name, Placeholder: !live || n.id == ""}
		if !s.Placeholder {
			s.SlotID = n.id
		}
		resp.Slots = append(resp.Slots, s)
	}
	return resp
}

// GET /ads/slots
func Slots(c *gin.Context) {
	c.JSON(http.StatusOK, BuildSlots(middleware.CurrentPolicy(c)))
}
