package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

// Listing page size bounds enforced before any request leaves the client.
const (
	minPageLimit = 1
	maxPageLimit = 50
)

func clampLimit(limit int) int {
	if limit < minPageLimit {
		return minPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

type prospectService struct {
	adapter  adapter.APIGateway
	validate *validator.Validate
	logger   *logger.Logger
}

// NewProspectService constructs a [ProspectService] backed by the provided
// gateway and validator.
func NewProspectService(gateway adapter.APIGateway, validate *validator.Validate, logger *logger.Logger) ProspectService {
	return &prospectService{adapter: gateway, validate: validate, logger: logger}
}

// List implements [ProspectService]. The limit is clamped to [1,50] and the
// page to >= 1 before the request. When the server reports fewer pages than
// the one requested (the last row of a page was consumed, or a filter
// narrowed the set), the last available page is fetched instead so the
// operator never sees an empty page beyond the end.
func (p *prospectService) List(ctx context.Context, page, limit int, filters models.ProspectFilters) (models.ProspectPage, error) {
	limit = clampLimit(limit)
	if page < 1 {
		page = 1
	}

	result, err := p.adapter.ListProspects(ctx, page, limit, filters)
	if err != nil {
		return models.ProspectPage{}, err
	}

	switch {
	case result.TotalPages == 0:
		// an empty listing is one empty page
		page = 1
		result.CurrentPage = 1
	case page > result.TotalPages:
		page = result.TotalPages
		result, err = p.adapter.ListProspects(ctx, page, limit, filters)
		if err != nil {
			return models.ProspectPage{}, err
		}
	}

	if result.CurrentPage == 0 {
		result.CurrentPage = page
	}

	return result, nil
}

// Create implements [ProspectService]. Validation failures are wrapped in
// [ErrValidation] and never reach the gateway.
func (p *prospectService) Create(ctx context.Context, spec models.ProspectSpec) (models.ProspectJob, error) {
	if err := p.validate.Struct(spec); err != nil {
		return models.ProspectJob{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	job, err := p.adapter.CreateProspect(ctx, spec)
	if err != nil {
		return models.ProspectJob{}, err
	}

	p.logger.Debug().Str("func", "*prospectService.Create").Int64("job_id", job.ID).Msg("prospect job created")
	return job, nil
}

// Download implements [ProspectService]. The export is written through a
// temporary file and renamed into place, so a failed transfer never leaves a
// truncated prospect-*.csv behind.
func (p *prospectService) Download(ctx context.Context, job models.ProspectJob, dir string) (string, error) {
	if !job.Status.Ready() {
		return "", fmt.Errorf("%w: job %d", ErrJobNotReady, job.ID)
	}

	file, err := p.adapter.DownloadProspect(ctx, job.ID)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("prospect-%d.csv", time.Now().UnixMilli()))

	tmp, err := os.CreateTemp(dir, ".prospect-*.tmp")
	if err != nil {
		p.logger.Err(err).Str("func", "*prospectService.Download").Msg("error creating temp file")
		return "", fmt.Errorf("create export file: %w", err)
	}

	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close export file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("save export file: %w", err)
	}

	p.logger.Debug().Str("func", "*prospectService.Download").Int64("job_id", job.ID).Str("path", path).Msg("prospect export saved")
	return path, nil
}
