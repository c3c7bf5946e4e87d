package detector

import (
	"archive/zip"
	"path/filepath"
	"slices"
	"strings"
)

// LibraryLocator scans the jar files under <home>/lib for the class file of a symbol.
type LibraryLocator struct {
	Home string
}

// Lookup implements Locator. Unreadable archives are skipped.
func (p LibraryLocator) Lookup(symbol string) (string, bool) {
	if p.Home == "" || symbol == "" {
		return "", false
	}

	jars, err := filepath.Glob(filepath.Join(p.Home, "lib", "*.jar"))
	if err != nil {
		return "", false
	}
	slices.Sort(jars)

	entry := ClassEntry(symbol)
	for _, jar := range jars {
		if containsEntry(jar, entry) {
			return jar, true
		}
	}
	return "", false
}

// ClassEntry returns the archive path of the class file for a dotted symbol name.
func ClassEntry(symbol string) string {
	return strings.ReplaceAll(symbol, ".", "/") + ".class"
}

func containsEntry(jar, entry string) bool {
	r, err := zip.OpenReader(jar)
	if err != nil {
		return false
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if f.Name == entry {
			return true
		}
	}
	return false
}
