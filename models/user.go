package models

import "time"

// UserAccount represents a console operator account. Username is immutable
// after creation; email, password, and status may be changed via the edit
// endpoint.
type UserAccount struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// Status is 1 for active accounts and 0 for inactive ones.
	Status int `json:"status"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Active reports whether the account may log in.
func (u UserAccount) Active() bool {
	return u.Status == 1
}

// CreateUserRequest is the registration payload. All three fields are
// required; the password must satisfy the strength rule enforced by the
// service layer.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditUserRequest is the partial-update payload keyed by account id. An empty
// Password is omitted from the JSON body entirely, meaning "do not change".
type EditUserRequest struct {
	Password string `json:"password,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Status   int    `json:"status" validate:"oneof=0 1"`
}

// UserPage is the paginated envelope of the account listing.
type UserPage struct {
	Data        []UserAccount `json:"data"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// UserListResponse wraps the account listing under the "result" key the
// endpoint uses.
type UserListResponse struct {
	Result UserPage `json:"result"`
}
