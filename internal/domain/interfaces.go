package domain

// ListItem is the polymorphic interface for records shown in a listing grid.
// Jobs and specialists implement it directly; filtering only ever looks at GetTitle.
type ListItem interface {
	// GetID returns the server-assigned identifier
	GetID() ID

	// GetTitle returns the display name
	GetTitle() string

	// GetSubtitle returns secondary info (e.g., "Acme • Berlin")
	GetSubtitle() string

	// GetDescription returns free text shown under the title
	GetDescription() string

	// GetTags returns the ordered tag list (job tags, specialist skills)
	GetTags() []string
}

// Named is implemented by items whose GetTitle substitutes a placeholder
// for a missing name. Filtering matches GetName instead.
type Named interface {
	GetName() string
}
