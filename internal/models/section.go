package models

import "time"

// Category groups induction sections by topic.
type Category string

const (
	CategoryCompany    Category = "Company"
	CategoryHR         Category = "HR"
	CategorySafety     Category = "Safety"
	CategoryOperations Category = "Operations"
)

// MediaType classifies an attachment kind.
type MediaType string

const (
	MediaTypeImage        MediaType = "image"
	MediaTypeVideo        MediaType = "video"
	MediaTypeDocument     MediaType = "document"
	MediaTypePresentation MediaType = "presentation"
)

// MediaAttachment is a named link to an external resource. The URL is kept
// as an untrusted string; validation or escaping is a render-boundary
// concern, not a data-model one.
type MediaAttachment struct {
	ID   string    `json:"id"`
	Type MediaType `json:"type"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// InductionSection is one onboarding content module. Sections are immutable
// once created: there is no edit operation, only add and delete.
type InductionSection struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Category    Category          `json:"category"`
	LastUpdated time.Time         `json:"lastUpdated"`
	// Order is assigned count+1 at creation and never renumbered on delete,
	// so values need not be contiguous or unique.
	Order       int               `json:"order"`
	Attachments []MediaAttachment `json:"attachments"`
}
