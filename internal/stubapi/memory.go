package stubapi

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/inohub/prospect-console/models"
)

// Seed operator created on startup so a fresh stub is immediately usable.
const (
	seedUsername = "admin"
	seedEmail    = "admin@inohub.com.br"
	seedPassword = "Admin#123"
)

type account struct {
	models.UserAccount
	passwordHash []byte
}

type jobRecord struct {
	models.ProspectJob
	createdAt time.Time
}

// memoryStore holds all stub state behind one mutex. Jobs carry no stored
// status; readiness is derived from their age on every read, which is how the
// delayed pending→ready transition is simulated.
type memoryStore struct {
	mu         sync.Mutex
	readyAfter time.Duration

	accounts      []*account
	jobs          []*jobRecord
	nextAccountID int64
	nextJobID     int64
}

func newMemoryStore(readyAfter time.Duration) (*memoryStore, error) {
	s := &memoryStore{
		readyAfter:    readyAfter,
		nextAccountID: 1,
		nextJobID:     1,
	}

	if _, err := s.createAccount(seedUsername, seedEmail, seedPassword); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *memoryStore) createAccount(username, email, password string) (models.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username == username {
			return models.UserAccount{}, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserAccount{}, err
	}

	now := time.Now().UTC()
	acc := &account{
		UserAccount: models.UserAccount{
			ID:        s.nextAccountID,
			Username:  username,
			Email:     email,
			Status:    1,
			CreatedAt: &now,
			UpdatedAt: &now,
		},
		passwordHash: hash,
	}
	s.nextAccountID++
	s.accounts = append(s.accounts, acc)

	return acc.UserAccount, nil
}

// authenticate returns the account matching the credentials, or false. Only
// active accounts may sign in.
func (s *memoryStore) authenticate(username, password string) (models.UserAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username != username || acc.Status != 1 {
			continue
		}
		if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) == nil {
			return acc.UserAccount, true
		}
	}

	return models.UserAccount{}, false
}

func (s *memoryStore) listAccounts(page, limit int) models.UserPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.UserAccount, 0, len(s.accounts))
	for _, acc := range s.accounts {
		all = append(all, acc.UserAccount)
	}

	data, totalPages, page := paginate(all, page, limit)
	return models.UserPage{
		Data:        data,
		Total:       len(all),
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

func (s *memoryStore) editAccount(id int64, patch models.EditUserRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.ID != id {
			continue
		}

		acc.Email = patch.Email
		acc.Status = patch.Status
		if patch.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			acc.passwordHash = hash
		}
		now := time.Now().UTC()
		acc.UpdatedAt = &now

		return nil
	}

	return ErrAccountNotFound
}

func (s *memoryStore) createJob(userID int64, spec models.ProspectSpec) models.ProspectJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &jobRecord{
		ProspectJob: models.ProspectJob{
			ID:         s.nextJobID,
			UserID:     userID,
			Filter:     spec,
			Status:     models.JobStatusPending,
			ExternalID: s.nextJobID + 1000,
		},
		createdAt: time.Now(),
	}
	s.nextJobID++
	s.jobs = append(s.jobs, rec)

	return rec.ProspectJob
}

func (s *memoryStore) listJobs(page, limit int, filters models.ProspectFilters) models.ProspectPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.ProspectJob, 0, len(s.jobs))
	for _, rec := range s.jobs {
		job := s.snapshot(rec)
		if matchesFilters(job, filters) {
			matched = append(matched, job)
		}
	}

	data, totalPages, page := paginate(matched, page, limit)
	return models.ProspectPage{
		Data:        data,
		Total:       len(matched),
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

func (s *memoryStore) job(id int64) (models.ProspectJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.jobs {
		if rec.ID == id {
			return s.snapshot(rec), true
		}
	}

	return models.ProspectJob{}, false
}

func (s *memoryStore) stats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := models.UserStats{Total: len(s.accounts)}
	for _, acc := range s.accounts {
		if acc.Status == 1 {
			users.Active++
		}
	}

	prospects := models.ProspectStats{Total: len(s.jobs)}
	perUser := map[string]int64{}
	for _, rec := range s.jobs {
		if s.snapshot(rec).Status.Ready() {
			prospects.Ready++
		}
		perUser[strconv.FormatInt(rec.UserID, 10)]++
	}
	for key, count := range perUser {
		prospects.ByUser = append(prospects.ByUser, models.CountByKey{Key: key, Count: count})
	}

	return models.DashboardStats{
		Users:     users,
		Prospects: prospects,
		Companies: companyUniverse,
		Revenue:   revenueUniverse,
	}
}

// snapshot copies the record with its derived status. Callers must hold the
// mutex.
func (s *memoryStore) snapshot(rec *jobRecord) models.ProspectJob {
	job := rec.ProspectJob
	if time.Since(rec.createdAt) >= s.readyAfter {
		job.Status = models.JobStatusReady
	}
	return job
}

func matchesFilters(job models.ProspectJob, f models.ProspectFilters) bool {
	if f.ID != "" && f.ID != strconv.FormatInt(job.ID, 10) {
		return false
	}
	if f.User != "" && f.User != strconv.FormatInt(job.UserID, 10) {
		return false
	}
	if f.State != "" && !containsFold(job.Filter.States, f.State) {
		return false
	}
	if f.Quantity != "" && f.Quantity != strconv.Itoa(job.Filter.Quantity) {
		return false
	}
	if f.Format != "" && !strings.EqualFold(f.Format, job.Filter.FileFormatting) {
		return false
	}
	if f.Status != "" && f.Status != strconv.Itoa(int(job.Status)) {
		return false
	}
	return true
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func paginate[T any](all []T, page, limit int) ([]T, int, int) {
	if limit < 1 {
		limit = 1
	}

	totalPages := (len(all) + limit - 1) / limit
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	if start >= len(all) {
		return []T{}, totalPages, page
	}

	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	return all[start:end], totalPages, page
}

// Canned company-universe aggregates. The production dashboard computes these
// from the full company database, which the stub does not carry.
var companyUniverse = models.CompanyStats{
	Total: 21_600_000,
	ByState: []models.CountByKey{
		{Key: "SP", Count: 6_480_000},
		{Key: "MG", Count: 2_380_000},
		{Key: "RJ", Count: 1_940_000},
		{Key: "PR", Count: 1_510_000},
		{Key: "RS", Count: 1_420_000},
	},
	ByCity: []models.CountByKey{
		{Key: "São Paulo", Count: 2_150_000},
		{Key: "Rio de Janeiro", Count: 980_000},
		{Key: "Belo Horizonte", Count: 520_000},
	},
	ByCNAE: []models.CountByKey{
		{Key: "4781-4/00", Count: 812_000},
		{Key: "5611-2/01", Count: 644_000},
		{Key: "9602-5/01", Count: 590_000},
	},
	BySize: []models.CountByKey{
		{Key: "MEI", Count: 13_200_000},
		{Key: "ME", Count: 6_100_000},
		{Key: "EPP", Count: 1_400_000},
	},
	ByLegalNature: []models.CountByKey{
		{Key: "213-5", Count: 14_800_000},
		{Key: "206-2", Count: 5_900_000},
	},
	ByCreationYear: []models.CountByKey{
		{Key: "2024", Count: 1_380_000},
		{Key: "2025", Count: 1_450_000},
		{Key: "2026", Count: 960_000},
	},
}

var revenueUniverse = models.RevenueStats{
	TotalDeclared:     9.74e12,
	AveragePerCompany: 450_925.93,
}
