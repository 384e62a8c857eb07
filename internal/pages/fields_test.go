package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagewright/internal/models"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func fieldErr(t *testing.T, err error) *FieldValidationError {
	t.Helper()
	var fErr *FieldValidationError
	require.ErrorAs(t, err, &fErr)
	return fErr
}

func TestValidateRequired(t *testing.T) {
	field := &models.FieldDefinition{Slug: "headline", Type: models.FieldText, IsRequired: true}

	err := validateValue(field, SetValueInput{})
	fieldErr(t, err)

	err = validateValue(field, SetValueInput{Value: strPtr("")})
	fieldErr(t, err)

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("hi")}))
}

func TestValidateOptionalEmptyValueSkipsChecks(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "subtitle", Type: models.FieldText, MinLength: intPtr(10),
	}
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("")}))
	assert.NoError(t, validateValue(field, SetValueInput{}))
}

func TestValidateTextLength(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "headline", Type: models.FieldText,
		MinLength: intPtr(3), MaxLength: intPtr(5),
	}

	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("ab")}))
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("abc")}))
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("abcde")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("abcdef")}))

	// Bounds count characters, not bytes.
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("ééééé")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("éééééé")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("éé")}))
}

func TestValidateInteger(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "count", Type: models.FieldInteger,
		MinValue: floatPtr(1), MaxValue: floatPtr(10),
	}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("5")}))
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("1")}))
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("10")}))

	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("abc")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("5.5")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("0")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("11")}))
}

func TestValidateDecimal(t *testing.T) {
	field := &models.FieldDefinition{Slug: "price", Type: models.FieldDecimal, MinValue: floatPtr(0)}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("19.99")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("-0.01")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("not-a-number")}))
}

func TestValidateEmail(t *testing.T) {
	field := &models.FieldDefinition{Slug: "contact", Type: models.FieldEmail}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("hi@example.com")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("not-an-email")}))
}

func TestValidateURL(t *testing.T) {
	field := &models.FieldDefinition{Slug: "link", Type: models.FieldURL}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("https://example.com")}))
	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("http://example.com")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("ftp://example.com")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("example.com")}))
}

func TestValidateJSON(t *testing.T) {
	field := &models.FieldDefinition{Slug: "config", Type: models.FieldJSON}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr(`{"a":1}`)}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr(`{"a":`)}))
}

func TestValidateSelectOptions(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "size", Type: models.FieldSelect, Options: `["sm","md","lg"]`,
	}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("md")}))
	err := validateValue(field, SetValueInput{Value: strPtr("xl")})
	assert.Equal(t, "size", fieldErr(t, err).FieldSlug)
}

func TestValidateRegex(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "sku", Type: models.FieldText, ValidationRegex: `^[A-Z]{3}-\d{4}$`,
	}

	assert.NoError(t, validateValue(field, SetValueInput{Value: strPtr("ABC-1234")}))
	fieldErr(t, validateValue(field, SetValueInput{Value: strPtr("abc-1234")}))

	broken := &models.FieldDefinition{Slug: "sku", Type: models.FieldText, ValidationRegex: `([`}
	fieldErr(t, validateValue(broken, SetValueInput{Value: strPtr("anything")}))
}

func TestValidateFileSize(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "hero", Type: models.FieldImage, MaxFileSizeKB: intPtr(100),
	}

	ok := SetValueInput{File: &FileUpload{Name: "hero.jpg", SizeBytes: 100 * 1024, URL: "/m/hero.jpg"}}
	assert.NoError(t, validateValue(field, ok))

	big := SetValueInput{File: &FileUpload{Name: "hero.jpg", SizeBytes: 100*1024 + 1, URL: "/m/hero.jpg"}}
	fieldErr(t, validateValue(field, big))
}

func TestValidateFileExtension(t *testing.T) {
	field := &models.FieldDefinition{
		Slug: "hero", Type: models.FieldImage, AllowedExtensions: "jpg,png",
	}

	assert.NoError(t, validateValue(field, SetValueInput{
		File: &FileUpload{Name: "photo.PNG", SizeBytes: 1, URL: "/m/photo.png"},
	}))
	fieldErr(t, validateValue(field, SetValueInput{
		File: &FileUpload{Name: "malware.exe", SizeBytes: 1, URL: "/m/malware.exe"},
	}))
}

func TestValidateRefSatisfiesRequired(t *testing.T) {
	field := &models.FieldDefinition{Slug: "related", Type: models.FieldRelation, IsRequired: true}

	assert.NoError(t, validateValue(field, SetValueInput{
		Ref: &RefInput{Kind: "page", Label: "Home"},
	}))
	fieldErr(t, validateValue(field, SetValueInput{}))
}
