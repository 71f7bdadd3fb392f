package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeProfile(t, `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"location": "Berlin, DE",
		"remote_ok": true,
		"titles": ["Backend Engineer"],
		"core_skills": ["Go", "Postgres"],
		"nice_skills": ["Docker"],
		"links": {"github": "https://github.com/janedoe"},
		"projects": [
			{"name": "Shoply", "highlights": ["Built a Rails storefront"]}
		]
	}`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.True(t, p.RemoteOK)
	assert.Equal(t, []string{"Go", "Postgres"}, p.CoreSkills)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "Shoply", p.Projects[0].Name)
}

func TestLoad_InvalidEmail(t *testing.T) {
	path := writeProfile(t, `{"name": "Jane", "email": "not-an-email", "location": "Berlin"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeProfile(t, `{"email": "jane@example.com"}`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeProfile(t, `{"name": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse profile")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
