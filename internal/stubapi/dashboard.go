package stubapi

import (
	"net/http"

	"github.com/inohub/prospect-console/models"
)

// dashboard returns the aggregated statistics under the "result" envelope.
// User and prospect counters reflect live stub state; the company-universe
// aggregates are canned.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.DashboardResponse{
		Result: h.store.stats(),
	})
}
