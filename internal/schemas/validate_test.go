package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-dashboard/internal/cvdata/cvdatatest"
	"github.com/jonathan/cv-dashboard/internal/dashboard"
	"github.com/jonathan/cv-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	tests := []struct {
		name     string
		document string
		wantErr  bool
	}{
		{"valid", `{"name": "Jane", "age": 30}`, false},
		{"missing field", `{"age": 30}`, true},
		{"wrong type", `{"name": "Jane", "age": "thirty"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, t.TempDir(), "doc.json", tt.document)
			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "Jane"}`)

	err := ValidateJSON(filepath.Join(dir, "nonexistent.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "malformed.json", "{ invalid json }")

	err := ValidateJSON(schemaPath, jsonPath)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Error(t, loadErr.Unwrap())
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "test"}`))

	err := ValidateJSONString(personSchema, `{"age": 30}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schemaContent := `{
		"type": "object",
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {"name": {"type": "string"}}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"person": {}}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.NotEqual(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestValidateDashboard_BuiltDashboard(t *testing.T) {
	dir := t.TempDir()
	entries, skills, social := cvdatatest.WriteSampleWorkbooks(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "city.png"), []byte("png"), 0o644))

	d := dashboard.NewBuilder(dashboard.Sources{
		EntriesPath: entries,
		SkillsPath:  skills,
		SocialPath:  social,
		ImageDir:    dir,
	}, types.Profile{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Location: &types.Location{Latitude: 47.42, Longitude: 9.37, Zoom: 12},
		Analyses: []types.Link{{Title: "Marathon", URL: "https://example.com/marathon"}},
	}, nil).Build("json")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NoError(t, ValidateDashboard(data))
}

func TestValidateDashboard_DegradedDashboard(t *testing.T) {
	d := dashboard.NewBuilder(dashboard.Sources{
		EntriesPath: filepath.Join(t.TempDir(), "missing.xlsx"),
	}, types.Profile{Name: "Jane Doe"}, nil).Build("json")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NoError(t, ValidateDashboard(data))
}

func TestValidateDashboard_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty object", `{}`},
		{"unknown status", `{
			"profile": {"name": "Jane"},
			"timeline": {"status": "gone", "data": {"entries": null, "lookup": null, "groups": null}},
			"skills": {"status": "not_found", "data": null},
			"social": {"status": "not_found", "data": {"network": "linkedin"}},
			"photo": {"status": "not_found", "data": ""},
			"map": {"status": "not_found", "data": null}
		}`},
		{"unsupported image", `{
			"profile": {"name": "Jane"},
			"timeline": {"status": "available", "data": {
				"entries": [{"title": "A", "institution": "B", "start": "2020-01-01T00:00:00Z", "formatted_description": "", "image": "logo.svg"}],
				"lookup": {}, "groups": []}},
			"skills": {"status": "not_found", "data": null},
			"social": {"status": "not_found", "data": {"network": "linkedin"}},
			"photo": {"status": "not_found", "data": ""},
			"map": {"status": "not_found", "data": null}
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var validationErr *ValidationError
			assert.ErrorAs(t, ValidateDashboard([]byte(tt.document)), &validationErr)
		})
	}
}

func TestValidateDashboardFile_NotFound(t *testing.T) {
	err := ValidateDashboardFile(filepath.Join(t.TempDir(), "export.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
