package domain

import "time"

// Humor is a single joke/humor document. UUID is the primary key; there is no
// separate auto-generated ID. ReleaseDate and CreatedDate are yyyy-mm-dd strings
// so equality and range filters match the wire format exactly.
type Humor struct {
	UUID        string        `json:"uuid"`
	Category    HumorCategory `json:"category"`
	Context     string        `json:"context"`
	Punchline   *string       `json:"punchline"`
	ContextList []string      `json:"context_list"`
	Sender      string        `json:"sender"`
	Source      string        `json:"source"`
	Author      *string       `json:"author"`
	ReleaseDate string        `json:"date"`
	CreatedDate string        `json:"created_date"`
	Index       int           `json:"index"`
	Active      bool          `json:"active"`
	BundleUUID  *string       `json:"bundle_uuid,omitempty"`

	// IsNew is derived at read time, never stored.
	IsNew bool `json:"is_new"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HumorUpdate carries the partial-update field set for an existing humor item.
// Every field present in a valid update payload is applied; the merge never
// touches uuid, category, release date, or the active flag.
type HumorUpdate struct {
	Author      *string
	Context     string
	Punchline   *string
	ContextList []string
	CreatedDate string
	Index       int
	Sender      string
	Source      string
}

// UserSubmission is an end-user-submitted joke. Append-only; the submission
// date is assigned by the server, never by the client.
type UserSubmission struct {
	ID               int64     `json:"id"`
	Nickname         string    `json:"nickname"`
	Context          string    `json:"context"`
	Punchline        *string   `json:"punchline"`
	AppUUID          string    `json:"app_uuid"`
	HumorUUID        string    `json:"humor_uuid"`
	SubscriptionType string    `json:"subscription_type"`
	SubmissionDate   string    `json:"submission_date"`
	CreatedAt        time.Time `json:"-"`
}
