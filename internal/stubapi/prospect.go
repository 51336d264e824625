package stubapi

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

// Upper bound on generated CSV rows so huge quantities stay cheap to serve.
const maxExportRows = 200

// listProspects returns one page of jobs, narrowed by the same filter query
// parameters the production listing accepts.
func (h *Handler) listProspects(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	q := r.URL.Query()
	filters := models.ProspectFilters{
		ID:       q.Get("id"),
		User:     q.Get("user"),
		State:    q.Get("state"),
		Quantity: q.Get("quantity"),
		Format:   q.Get("format"),
		Status:   q.Get("status"),
	}

	h.writeJSON(w, http.StatusOK, h.store.listJobs(page, limit, filters))
}

// createProspect registers a new job owned by the authenticated account.
func (h *Handler) createProspect(w http.ResponseWriter, r *http.Request) {
	var spec models.ProspectSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	job := h.store.createJob(accountIDFromContext(r.Context()), spec)

	h.writeJSON(w, http.StatusCreated, models.ProspectCreateResponse{Data: job})
}

// downloadProspect serves the generated CSV of a ready job. Unknown jobs and
// jobs still pending both yield 404, matching what the console maps to
// "not found".
func (h *Handler) downloadProspect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	job, ok := h.store.job(id)
	if !ok {
		http.Error(w, ErrJobNotFound.Error(), http.StatusNotFound)
		return
	}
	if !job.Status.Ready() {
		http.Error(w, ErrJobNotReady.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="prospect-%d.csv"`, job.ID))

	if err := writeExportCSV(w, job); err != nil {
		log.Err(err).Msg("error streaming export")
	}
}

// writeExportCSV emits a deterministic fake export shaped like the real one.
func writeExportCSV(w http.ResponseWriter, job models.ProspectJob) error {
	rows := job.Filter.Quantity
	if rows < 1 {
		rows = 1
	}
	if rows > maxExportRows {
		rows = maxExportRows
	}

	state := "SP"
	if len(job.Filter.States) > 0 {
		state = job.Filter.States[0]
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"cnpj", "razao_social", "uf", "municipio", "email", "telefone"}); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		record := []string{
			fmt.Sprintf("%014d", job.ID*1_000_000+int64(i)),
			fmt.Sprintf("EMPRESA %d-%d LTDA", job.ID, i+1),
			state,
			"São Paulo",
			fmt.Sprintf("contato%d@empresa%d.com.br", i+1, job.ID),
			fmt.Sprintf("+55 11 9%04d-%04d", i+1, (i*37)%10_000),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
