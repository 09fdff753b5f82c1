package model

import (
	"github.com/pkg/errors"
)

// ErrUnknownName is returned when a serialized enum name is not recognized.
var ErrUnknownName = errors.New("unknown enum name")

// parseName resolves name against the given name table. The table index is the
// enum value.
func parseName(kind string, names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownName, "%s %q", kind, name)
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Invalid"
	}
	return names[i]
}
