package domain

import "time"

// Bundle is a purchasable collection of humor items.
type Bundle struct {
	UUID                 string        `json:"uuid"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Category             HumorCategory `json:"category"`
	ReleaseDate          string        `json:"release_date"`
	HumorCount           int           `json:"humor_count"`
	CoverImgList         []string      `json:"cover_img_list"`
	ThumbnailPath        *string       `json:"thumbnail_path,omitempty"`
	LanguageCode         string        `json:"language_code"`
	ProductID            string        `json:"product_id"`
	PreviewCount         int           `json:"preview_count"`
	PreviewShowPunchline bool          `json:"preview_show_punchline"`
	Active               bool          `json:"active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BundleUpdate carries the partial-update field set for an existing bundle.
type BundleUpdate struct {
	Title                string
	Description          string
	ReleaseDate          string
	HumorCount           int
	LanguageCode         string
	ProductID            string
	PreviewCount         int
	PreviewShowPunchline bool
	Active               bool
}

// BundleSet is an ordered, curated list of bundles. BundleList holds bundle
// UUIDs in display order; that order wins over whatever order the store
// returns the bundles in.
type BundleSet struct {
	UUID       string   `json:"uuid"`
	BundleList []string `json:"bundle_list"`
	Index      int      `json:"index"`
	Active     bool     `json:"active"`
}

// CoverOp selects the cover image list mutation for an upload request.
type CoverOp string

const (
	CoverOpAdd     CoverOp = "add"
	CoverOpReplace CoverOp = "replace"
	CoverOpDelete  CoverOp = "delete"
)

func (o CoverOp) IsValid() bool {
	switch o {
	case CoverOpAdd, CoverOpReplace, CoverOpDelete:
		return true
	}
	return false
}
