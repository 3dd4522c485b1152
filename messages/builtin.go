package messages

import (
	"embed"
	"io/fs"
	"path"

	"github.com/ZaguanLabs/alltools"
)

//go:embed locales/*.yaml
var locales embed.FS

// Builtin returns a fresh store holding the built-in texts of the default catalog.
func Builtin() (*Store, error) {
	store := NewStore(alltools.English)

	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, &alltools.LoadError{Path: name, Cause: err}
		}
		b, err := Decode(path.Ext(name), data)
		if err != nil {
			return nil, &alltools.LoadError{Path: name, Cause: err}
		}
		store.Merge(b)
	}
	return store, nil
}
