package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	coremanifest "github.com/artpar/cci-validate/internal/core/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects reported messages.
type recorder struct {
	messages []string
}

func (r *recorder) Info(msg string, args ...any) {
	r.messages = append(r.messages, msg)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// validManifest returns a deployment manifest padded to roughly size bytes.
func validManifest(name string, size int) string {
	base := "apiVersion: apps/v1\nkind: Deployment\nmetadata:\n  name: " + name + "\n"
	if pad := size - len(base); pad > 0 {
		base += "# " + strings.Repeat("x", pad) + "\n"
	}
	return base
}

// =============================================================================
// Check Tests
// =============================================================================

func TestCheck_EmptyPathAccepted(t *testing.T) {
	rec := &recorder{}
	assert.True(t, Check("", rec))
	assert.Empty(t, rec.messages)
}

func TestCheck_ValidFile(t *testing.T) {
	rec := &recorder{}
	path := writeFile(t, "deploy.yaml", validManifest("foo", 1024))
	assert.True(t, Check(path, rec))
	assert.Empty(t, rec.messages)
}

func TestCheck_YMLExtension(t *testing.T) {
	path := writeFile(t, "deploy.yml", validManifest("foo", 0))
	assert.True(t, Check(path, nil))
}

func TestCheck_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy.yaml"), []byte(validManifest("foo", 0)), 0644))
	t.Chdir(dir)

	assert.True(t, Check("deploy.yaml", nil))
}

func TestCheck_Rejections(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		path   func(t *testing.T) string
		reason string
	}{
		{
			name:   "missing file",
			path:   func(t *testing.T) string { return filepath.Join(dir, "missing.yaml") },
			reason: ReasonNotExist,
		},
		{
			name:   "directory",
			path:   func(t *testing.T) string { return dir },
			reason: ReasonIsDirectory,
		},
		{
			name:   "directory with yaml name",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "deploy.yaml")
				require.NoError(t, os.Mkdir(p, 0755))
				return p
			},
			reason: ReasonIsDirectory,
		},
		{
			name:   "json file",
			path:   func(t *testing.T) string { return writeFile(t, "deploy.json", `{"metadata":{"name":"foo"}}`) },
			reason: ReasonNotYAML,
		},
		{
			name:   "no extension",
			path:   func(t *testing.T) string { return writeFile(t, "deploy", validManifest("foo", 0)) },
			reason: ReasonNotYAML,
		},
		{
			name:   "empty yaml file",
			path:   func(t *testing.T) string { return writeFile(t, "deploy.yaml", "") },
			reason: ReasonBadSize,
		},
		{
			name:   "25 KiB yaml file",
			path:   func(t *testing.T) string { return writeFile(t, "deploy.yaml", validManifest("foo", 25*1024)) },
			reason: ReasonBadSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			assert.False(t, Check(tt.path(t), rec))
			require.Len(t, rec.messages, 1)
			assert.Equal(t, tt.reason, rec.messages[0])
		})
	}
}

func TestCheck_SizeBoundary(t *testing.T) {
	exact := writeFile(t, "exact.yaml", strings.Repeat("a", MaxSize))
	assert.True(t, Check(exact, nil))

	over := writeFile(t, "over.yaml", strings.Repeat("a", MaxSize+1))
	assert.False(t, Check(over, nil))
}

// =============================================================================
// CheckConsistency Tests
// =============================================================================

func TestCheckConsistency_Matches(t *testing.T) {
	rec := &recorder{}
	path := writeFile(t, "deploy.yaml", "metadata: {name: foo}\n")

	ok, err := CheckConsistency("foo", path, rec)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rec.messages)
}

func TestCheckConsistency_MatchesWithNonStringKeys(t *testing.T) {
	rec := &recorder{}
	path := writeFile(t, "deploy.yaml", "metadata:\n  name: foo\n  80: http\n")

	ok, err := CheckConsistency("foo", path, rec)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rec.messages)
}

func TestCheckConsistency_NameMismatch(t *testing.T) {
	rec := &recorder{}
	path := writeFile(t, "deploy.yaml", "metadata: {name: foo}\n")

	ok, err := CheckConsistency("bar", path, rec)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{ReasonNameMismatch}, rec.messages)
}

func TestCheckConsistency_NotCorrect(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing metadata", "kind: Deployment\nspec: {}\n"},
		{"null metadata", "metadata:\n"},
		{"missing name", "metadata:\n  namespace: team-a\n"},
		{"null name", "metadata:\n  name: null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			path := writeFile(t, "deploy.yaml", tt.content)

			ok, err := CheckConsistency("foo", path, rec)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, []string{ReasonNotCorrect}, rec.messages)
		})
	}
}

func TestCheckConsistency_MalformedIsFault(t *testing.T) {
	rec := &recorder{}
	path := writeFile(t, "deploy.yaml", "metadata: [[[\n")

	ok, err := CheckConsistency("foo", path, rec)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, coremanifest.ErrInvalidYAML))
	assert.Empty(t, rec.messages)
}

func TestCheckConsistency_UnreadableIsFault(t *testing.T) {
	ok, err := CheckConsistency("foo", filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// =============================================================================
// ContentType Tests
// =============================================================================

func TestContentType(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"deploy.yaml", ContentTypeYAML, true},
		{"deploy.yml", ContentTypeYAML, true},
		{"DEPLOY.YAML", ContentTypeYAML, true},
		{"/abs/path/deploy.yaml", ContentTypeYAML, true},
		{"deploy.json", "application/json", true},
		{"deploy.html", "text/html", true},
		{"deploy", "", false},
		{"deploy.unknownext", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ContentType(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
