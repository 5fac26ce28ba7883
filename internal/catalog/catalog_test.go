package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loanlens/internal/domain"
)

func TestFieldsForKnownTypes(t *testing.T) {
	p := NewProvider()
	for _, docType := range p.DocumentTypes() {
		defs, ok := p.FieldsFor(docType)
		assert.True(t, ok, docType)
		assert.NotEmpty(t, defs, docType)
	}
	_, ok := p.FieldsFor("hoa_certificate")
	assert.False(t, ok)
}

func TestFieldNamesUniquePerType(t *testing.T) {
	p := NewProvider()
	for _, docType := range p.DocumentTypes() {
		defs, _ := p.FieldsFor(docType)
		seen := map[string]bool{}
		for _, def := range defs {
			assert.False(t, seen[def.Name], "%s: duplicate field %s", docType, def.Name)
			seen[def.Name] = true
		}
	}
}

func TestRulesCarrySeverityAndMessage(t *testing.T) {
	p := NewProvider()
	for _, docType := range p.DocumentTypes() {
		defs, _ := p.FieldsFor(docType)
		for _, def := range defs {
			for _, r := range def.Rules {
				assert.NotEmpty(t, r.Condition, "%s.%s", docType, def.Name)
				assert.NotEmpty(t, r.Severity, "%s.%s", docType, def.Name)
				assert.NotEmpty(t, r.ErrorMessage, "%s.%s", docType, def.Name)
			}
		}
	}
}

func TestTrackedFieldsMapToCataloguedFields(t *testing.T) {
	p := NewProvider()
	for _, tracked := range p.TrackedFields() {
		assert.NotEmpty(t, tracked.LoanPath, tracked.Name)
		assert.NotEmpty(t, tracked.DocumentFields, tracked.Name)
		for docType, fieldName := range tracked.DocumentFields {
			defs, ok := p.FieldsFor(docType)
			assert.True(t, ok, "%s maps unknown type %s", tracked.Name, docType)
			found := false
			for _, def := range defs {
				if def.Name == fieldName {
					found = true
					break
				}
			}
			assert.True(t, found, "%s maps %s.%s which is not catalogued", tracked.Name, docType, fieldName)
		}
	}
}

func TestTrackedFieldCategoriesAreScored(t *testing.T) {
	p := NewProvider()
	for _, tracked := range p.TrackedFields() {
		assert.Greater(t, tracked.Category.BaseScore(), float64(0), tracked.Name)
	}
	// Unknown categories fall back rather than zeroing out.
	assert.Equal(t, float64(5), domain.FieldCategory("Misc").BaseScore())
}
