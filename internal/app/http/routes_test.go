package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"construlab/config"

	"github.com/gin-gonic/gin"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prevMetrics, prevDemo := config.METRICS_ENABLED, config.DEMO_PAYMENTS
	config.METRICS_ENABLED, config.DEMO_PAYMENTS = true, false
	t.Cleanup(func() { config.METRICS_ENABLED, config.DEMO_PAYMENTS = prevMetrics, prevDemo })

	r := gin.New()
	RegisterRoutes(r)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"POST /estimate/area",
		"POST /reports/xlsx",
		"GET /projects/:id",
		"POST /billing/cancel",
		"PUT /admin/users/:id/role",
		"GET /metrics",
	} {
		if !registered[want] {
			t.Errorf("route %s not registered", want)
		}
	}
	if registered["POST /billing/simulate-success"] {
		t.Errorf("demo payment route must be off unless DEMO_PAYMENTS is set")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: got %d", w.Code)
	}
}
