package models

// IntRange is an inclusive numeric interval used by firmographic filters
// (employee count, revenue, share capital, vehicle count). A zero bound means
// "unbounded" on that side.
type IntRange struct {
	Lower int64 `json:"lower,omitempty"`
	Upper int64 `json:"upper,omitempty"`
}

// ProspectSpec is the lead-generation query a prospect job is created from.
// Every field except Name is optional; the zero value of a field means the
// corresponding constraint is not applied. Field names follow the wire
// contract of the prospecting API, quirks included.
type ProspectSpec struct {
	// Name is the free-text label of the job. It is the only field the
	// console itself requires.
	Name string `json:"name" validate:"required"`

	// Geographic scope.
	States         []string `json:"states"`
	Cities         []string `json:"cities"`
	Neighborhoods  []string `json:"neighborhoodies"`

	// Firmographic ranges.
	EmployeeCount IntRange `json:"employee_count,omitzero"`
	Revenue       IntRange `json:"revenue,omitzero"`
	ShareCapital  IntRange `json:"share_capital,omitzero"`
	VehicleCount  IntRange `json:"vehicle_count,omitzero"`

	// Classification codes.
	CBOCodes         []string `json:"cbo_codes,omitempty"`
	CNAECodes        []string `json:"cnae_codes,omitempty"`
	SectorCodes      []string `json:"sector_codes,omitempty"`
	LegalNatureCodes []string `json:"legal_nature_codes,omitempty"`

	// Company-type flags. H = headquarters (Matriz), F = branch (Filial).
	HeadquarterType string `json:"headquarter_type,omitempty" validate:"omitempty,oneof=H F"`
	MEIType         string `json:"mei_type,omitempty" validate:"omitempty,oneof=SIM NAO"`
	SimpleType      string `json:"simple_type,omitempty" validate:"omitempty,oneof=SIM NAO"`
	ImportExport    string `json:"import_export,omitempty" validate:"omitempty,oneof=IMPORTA EXPORTA"`

	// ContactChannels restricts results to companies reachable through the
	// listed channels (e.g. "email", "phone", "whatsapp").
	ContactChannels []string `json:"contact_channels,omitempty"`

	// Output parameters.
	Export         bool   `json:"export"`
	Quantity       int    `json:"quantity" validate:"gt=0"`
	Plan           int    `json:"plan" validate:"gt=0"`
	FileFormatting string `json:"file_formatting" validate:"oneof=csv xlsx"`
	CallbackEmail  string `json:"callback_email,omitempty" validate:"omitempty,email"`
}

// DefaultProspectSpec returns a spec pre-filled with the console defaults:
// 1000 records, plan 3, CSV output, no export flag, empty collections.
func DefaultProspectSpec() ProspectSpec {
	return ProspectSpec{
		States:         []string{},
		Cities:         []string{},
		Neighborhoods:  []string{},
		Export:         false,
		Quantity:       1000,
		Plan:           3,
		FileFormatting: "csv",
	}
}

// ProspectJob is a server-side lead-generation task. Jobs are created with a
// caller-supplied spec, transition from pending to ready entirely server-side,
// and are never edited or deleted by this client.
type ProspectJob struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"userId"`
	Filter     ProspectSpec `json:"filter"`
	Status     JobStatus    `json:"status"`
	ExternalID int64        `json:"externalId,omitempty"`
}

// ProspectPage is the paginated envelope of the prospect listing.
type ProspectPage struct {
	Data        []ProspectJob `json:"data"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// ProspectCreateResponse wraps the created job payload.
type ProspectCreateResponse struct {
	Data ProspectJob `json:"data"`
}

// ProspectFile is the raw export retrieved from the download endpoint before
// it is saved to disk.
type ProspectFile struct {
	ContentType string
	Data        []byte
}
