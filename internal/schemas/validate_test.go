package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelo/profile-sync/internal/profile"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "contact": { "type": "array", "items": { "type": "string" } }
  }
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Alice", "contact": ["alice@example.com"]}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"contact": []}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Alice", "contact": "not-a-list"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "contact", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	jsonPath := filepath.Join(tmpDir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": "Alice"}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(tmpDir, "missing.json")))
	assert.Error(t, ValidateJSON(filepath.Join(tmpDir, "missing.schema.json"), schemaPath))
}

func TestValidateProfileFile_RoundTrip(t *testing.T) {
	if ResolveSchemaPath(ProfileSchemaPath) == "" {
		t.Skip("profile schema not reachable from test working directory")
	}

	record := profile.NewRecord()
	record.Name = "Alice Souza"
	record.Contact = append(record.Contact, "alice@example.com")
	record.Certifications["aws_ccp"] = profile.Certification{
		Name:                "AWS Certified Cloud Practitioner",
		ExtractedFromResume: true,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0o644))

	assert.NoError(t, ValidateProfileFile(jsonPath))
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("no/such/schema.json"))
}
