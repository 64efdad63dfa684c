package types

// SectionStatus names the outcome of loading one optional data source
type SectionStatus string

const (
	SectionAvailable SectionStatus = "available"
	SectionNotFound  SectionStatus = "not_found"
	SectionMalformed SectionStatus = "malformed"
)

// Section is the typed result of one optional source: data on success,
// a named failure reason and a user-facing notice otherwise.
type Section[T any] struct {
	Status SectionStatus `json:"status"`
	Notice string        `json:"notice,omitempty"`
	Data   T             `json:"data"`
}

// Available reports whether the section loaded successfully
func (s Section[T]) Available() bool {
	return s.Status == SectionAvailable
}

// Link is a titled hyperlink shown in a static list
type Link struct {
	Title string `json:"title" koanf:"title" validate:"required"`
	URL   string `json:"url" koanf:"url" validate:"required,url"`
}

// Location is the map marker of the candidate's place of residence.
// Coordinates are range-checked per render; out of range degrades the map section.
type Location struct {
	Label     string  `json:"label,omitempty" koanf:"label"`
	Latitude  float64 `json:"latitude" koanf:"latitude"`
	Longitude float64 `json:"longitude" koanf:"longitude"`
	Zoom      int     `json:"zoom,omitempty" koanf:"zoom" validate:"gte=0,lte=20"`
}

// Profile holds the personal details that do not come from spreadsheets
type Profile struct {
	Name         string    `json:"name" koanf:"name" validate:"required"`
	Headline     string    `json:"headline,omitempty" koanf:"headline"`
	Email        string    `json:"email,omitempty" koanf:"email" validate:"omitempty,email"`
	Phone        string    `json:"phone,omitempty" koanf:"phone"`
	Photo        string    `json:"photo,omitempty" koanf:"photo"`
	Location     *Location `json:"location,omitempty" koanf:"location"`
	Hobbies      []string  `json:"hobbies,omitempty" koanf:"hobbies"`
	Certificates []string  `json:"certificates,omitempty" koanf:"certificates"`
	Analyses     []Link    `json:"analyses,omitempty" koanf:"analyses" validate:"dive"`
}

// Timeline is the data behind the timeline chart and the detail panels
type Timeline struct {
	Entries []Entry          `json:"entries"`
	Lookup  EntryLookup      `json:"lookup"`
	Groups  CategoryGrouping `json:"groups"`
}

// SocialLinks holds the resolved social profile URL
type SocialLinks struct {
	Network string `json:"network"`
	URL     string `json:"url,omitempty"`
}

// Dashboard is everything one render pass needs. It is built fresh for
// every render and never mutated afterwards.
type Dashboard struct {
	Profile  Profile              `json:"profile"`
	Timeline Section[Timeline]    `json:"timeline"`
	Skills   Section[[]Skill]     `json:"skills"`
	Social   Section[SocialLinks] `json:"social"`
	Photo    Section[string]      `json:"photo"`
	Map      Section[*Location]   `json:"map"`
}
