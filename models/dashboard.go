package models

// CountByKey is a single bucket of an aggregate breakdown, e.g. companies per
// state or prospects per operator.
type CountByKey struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// UserStats aggregates operator accounts.
type UserStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// ProspectStats aggregates prospect jobs.
type ProspectStats struct {
	Total  int          `json:"total"`
	Ready  int          `json:"ready"`
	ByUser []CountByKey `json:"by_user"`
}

// CompanyStats aggregates the company universe the prospecting product
// queries against.
type CompanyStats struct {
	Total          int64        `json:"total"`
	ByState        []CountByKey `json:"by_state"`
	ByCity         []CountByKey `json:"by_city"`
	ByCNAE         []CountByKey `json:"by_cnae"`
	BySize         []CountByKey `json:"by_size"`
	ByLegalNature  []CountByKey `json:"by_legal_nature"`
	ByCreationYear []CountByKey `json:"by_creation_year"`
}

// RevenueStats aggregates declared revenue across the company universe.
type RevenueStats struct {
	TotalDeclared     float64 `json:"total_declared"`
	AveragePerCompany float64 `json:"average_per_company"`
}

// DashboardStats is the precomputed statistics payload of the dashboard
// endpoint. The console renders it as-is and performs no computation of its
// own.
type DashboardStats struct {
	Users     UserStats     `json:"users"`
	Prospects ProspectStats `json:"prospects"`
	Companies CompanyStats  `json:"companies"`
	Revenue   RevenueStats  `json:"revenue"`
}

// DashboardResponse wraps the statistics under the "result" key.
type DashboardResponse struct {
	Result DashboardStats `json:"result"`
}
