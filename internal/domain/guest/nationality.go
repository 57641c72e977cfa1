package guest

import (
	"errors"
	"sort"
	"strings"
)

var ErrUnknownNationality = errors.New("unknown nationality")

// NationalityDirectory validates guest nationality against an explicitly
// constructed lookup. It is built once at startup and injected; there is
// no package-level registry.
type NationalityDirectory struct {
	codeByKey map[string]string
	nameByKey map[string]string
}

func NewNationalityDirectory(codeByName map[string]string) *NationalityDirectory {
	codes := make(map[string]string, len(codeByName))
	names := make(map[string]string, len(codeByName))
	for name, code := range codeByName {
		display := strings.TrimSpace(name)
		key := strings.ToLower(display)
		codes[key] = strings.ToUpper(code)
		names[key] = display
	}
	return &NationalityDirectory{codeByKey: codes, nameByKey: names}
}

// Resolve returns the canonical code for a nationality name.
func (d *NationalityDirectory) Resolve(name string) (string, error) {
	code, ok := d.codeByKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", ErrUnknownNationality
	}
	return code, nil
}

func (d *NationalityDirectory) Contains(name string) bool {
	_, err := d.Resolve(name)
	return err == nil
}

// Names lists known nationality names as given at construction, in
// stable order, for form rendering.
func (d *NationalityDirectory) Names() []string {
	names := make([]string, 0, len(d.nameByKey))
	for _, name := range d.nameByKey {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultNationalities is the seed lookup used when no directory is
// configured. Extend via configuration rather than editing this map.
func DefaultNationalities() map[string]string {
	return map[string]string{
		"American":  "US",
		"Brazilian": "BR",
		"British":   "GB",
		"Bulgarian": "BG",
		"Canadian":  "CA",
		"Chinese":   "CN",
		"French":    "FR",
		"German":    "DE",
		"Greek":     "GR",
		"Indian":    "IN",
		"Italian":   "IT",
		"Japanese":  "JP",
		"Romanian":  "RO",
		"Spanish":   "ES",
		"Turkish":   "TR",
	}
}
