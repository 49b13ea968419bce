package pipeline

import (
	"encoding/json"
	"os"
)

// writeJSON persists v with human-readable indentation. HTML escaping is
// off so text survives byte for byte.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
