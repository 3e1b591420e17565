package model

import "time"

// RequestSource records how a report request arrived.
type RequestSource string

// Request source constants.
const (
	SourceText  RequestSource = "text"
	SourceVoice RequestSource = "voice"
)

// ReportRecord is one interpreted report request kept in the history store.
type ReportRecord struct {
	CreatedAt      time.Time      `json:"created_at"`
	ID             string         `json:"id"`
	Prompt         string         `json:"prompt"`
	ReportType     ReportType     `json:"report_type"`
	Format         OutputFormat   `json:"format"`
	Source         RequestSource  `json:"source"`
	Role           Role           `json:"role"`
	Interpretation Interpretation `json:"interpretation"`
}

// Role identifies the caller's authorization level. The interpreter itself
// is role-agnostic; roles matter to the authorization gate and the history
// store only.
type Role string

// Role constants.
const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}
