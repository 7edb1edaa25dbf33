package manifest

import (
	"mime"
	"path/filepath"
	"strings"
)

// ContentTypeYAML is the content type a manifest file must have.
const ContentTypeYAML = "text/yaml"

// knownTypes covers extensions the system mime tables are not guaranteed
// to know about.
var knownTypes = map[string]string{
	".yaml": ContentTypeYAML,
	".yml":  ContentTypeYAML,
	".json": "application/json",
	".txt":  "text/plain",
}

// ContentType guesses the content type of a file from its extension.
// It returns false when the extension is missing or unknown.
func ContentType(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	if t, ok := knownTypes[ext]; ok {
		return t, true
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return "", false
	}
	// Drop parameters such as "; charset=utf-8".
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		t = mt
	}
	return t, true
}
