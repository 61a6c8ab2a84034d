package pushapi

import "time"

// CreatePushInput holds the payload and options for creating a push.
// Pointer fields are omitted from the request when nil so the service
// applies its own defaults.
type CreatePushInput struct {
	Payload           string
	Note              string
	Passphrase        string
	ExpireAfterDays   *int
	ExpireAfterViews  *int
	DeletableByViewer *bool
	RetrievalStep     *bool
	Files             []File
}

// File is one attachment of a file push.
type File struct {
	Name    string
	Content []byte
}

// Push is the service representation of a push.
type Push struct {
	URLToken          string     `json:"url_token"`
	Note              string     `json:"note,omitempty"`
	ExpireAfterDays   int        `json:"expire_after_days"`
	ExpireAfterViews  int        `json:"expire_after_views"`
	DaysRemaining     int        `json:"days_remaining"`
	ViewsRemaining    int        `json:"views_remaining"`
	Expired           bool       `json:"expired"`
	Deleted           bool       `json:"deleted"`
	DeletableByViewer bool       `json:"deletable_by_viewer"`
	RetrievalStep     bool       `json:"retrieval_step"`
	ExpiredOn         *time.Time `json:"expired_on,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Preview is the response of the preview endpoint.
type Preview struct {
	URL string `json:"url"`
}

// View is one entry of a push's audit log.
type View struct {
	IP         string    `json:"ip"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer"`
	Successful bool      `json:"successful"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditLog is the response of the audit endpoint.
type AuditLog struct {
	Views []View `json:"views"`
}
