// Package entities contains core business entities.
package entities

// DocKind selects the audience for generated documentation.
type DocKind string

const (
	// DocTechnical targets developers.
	DocTechnical DocKind = "technical"
	// DocNonTechnical targets stakeholders.
	DocNonTechnical DocKind = "non-technical"
)
