// Package model defines domain types shared across the CLI.
package model

import "fmt"

// Kind identifies the type of object a push carries.
type Kind string

// Push kinds supported by the Password Pusher API.
const (
	KindText Kind = "text"
	KindFile Kind = "file"
	KindURL  Kind = "url"
)

// Kinds returns all push kinds in display order.
func Kinds() []Kind {
	return []Kind{KindText, KindFile, KindURL}
}

// ParseKind parses a kind name as used on the command line.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindText, KindFile, KindURL:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown push kind %q (expected text, file, or url)", s)
	}
}

// Prefix returns the single-letter endpoint prefix the JSON API uses for
// this kind: p for text pushes, f for file pushes, r for URL pushes.
func (k Kind) Prefix() string {
	switch k {
	case KindFile:
		return "f"
	case KindURL:
		return "r"
	default:
		return "p"
	}
}

// ParamKey returns the top-level request parameter name for create calls.
func (k Kind) ParamKey() string {
	switch k {
	case KindFile:
		return "file_push"
	case KindURL:
		return "url"
	default:
		return "password"
	}
}

func (k Kind) String() string {
	return string(k)
}
