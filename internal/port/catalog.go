package port

import "loanlens/internal/domain"

// FieldCatalog serves the static validation configuration: per-type
// field definitions and the tracked-field set for the scorecard.
type FieldCatalog interface {
	FieldsFor(documentType string) ([]domain.FieldDefinition, bool)
	DocumentTypes() []string
	TrackedFields() []domain.TrackedField
}
