package domain

// HumorFilter contains the optional equality filters for daily humor listings.
// Nil fields are not applied; when Date is nil the repository falls back to the
// last-7-days release date range.
type HumorFilter struct {
	Category *HumorCategory
	Date     *string
	Active   *bool
}
