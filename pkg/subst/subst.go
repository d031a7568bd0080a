// Package subst implements strict placeholder substitution for folder-spec
// strings.
//
// Placeholders use the $name or ${name} form; $$ produces a literal dollar
// sign. Substitution is strict: a placeholder whose key is absent from the
// variable map is an error, never a silent passthrough. A path containing a
// leftover token would silently corrupt the created tree, which is exactly
// what the strictness prevents.
package subst

import (
	"strings"

	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/types"
)

// Expand replaces every placeholder in s with its value from vars.
// It fails with an ErrMissingVar error naming the key and the offending
// string when a placeholder has no entry in vars.
func Expand(s string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}

		// c is '$'; look at what follows
		if i+1 >= len(s) {
			// trailing bare '$' is literal
			b.WriteByte('$')
			break
		}

		switch next := s[i+1]; {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", errors.Newf(errors.ErrInvalidInput,
					"unterminated placeholder in %q", s)
			}
			name := s[i+2 : i+2+end]
			if !validName(name) {
				return "", errors.Newf(errors.ErrInvalidInput,
					"invalid placeholder name %q in %q", name, s)
			}
			value, ok := vars[name]
			if !ok {
				return "", missingVar(name, s)
			}
			b.WriteString(value)
			i += 2 + end + 1
		case isNameStart(next):
			j := i + 1
			for j < len(s) && isNameByte(s[j]) {
				j++
			}
			name := s[i+1 : j]
			value, ok := vars[name]
			if !ok {
				return "", missingVar(name, s)
			}
			b.WriteString(value)
			i = j
		default:
			// '$' followed by a non-name byte is literal
			b.WriteByte('$')
			i++
		}
	}

	return b.String(), nil
}

// ExpandTree applies Expand to every directory path and file entry in tree,
// returning a new tree. The input tree is not modified.
func ExpandTree(tree *types.FlattenedTree, vars map[string]string) (*types.FlattenedTree, error) {
	out := types.NewFlattenedTree()

	for _, path := range tree.Paths() {
		newPath, err := Expand(path, vars)
		if err != nil {
			return nil, err
		}

		entries := tree.FilesFor(path)
		newEntries := make([]string, 0, len(entries))
		for _, entry := range entries {
			newEntry, err := Expand(entry, vars)
			if err != nil {
				return nil, err
			}
			newEntries = append(newEntries, newEntry)
		}

		out.Add(newPath, newEntries)
	}

	return out, nil
}

func missingVar(name, s string) *errors.TreegenError {
	return errors.Newf(errors.ErrMissingVar,
		"no value for placeholder %q in %q", name, s).
		WithDetail("key", name).
		WithDetail("string", s)
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	if !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}
