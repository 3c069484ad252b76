package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// FunctionID identifies a view function as address::module::name
type FunctionID struct {
	Address string
	Module  string
	Name    string
}

func (f FunctionID) String() string {
	return f.Address + "::" + f.Module + "::" + f.Name
}

// ViewRequest is the body of a read-only function call
type ViewRequest struct {
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// ParseFunctionID parses and validates a fully-qualified function identifier
func ParseFunctionID(s string) (FunctionID, error) {
	parts := strings.Split(strings.TrimSpace(s), "::")
	if len(parts) != 3 {
		return FunctionID{}, fmt.Errorf("%w %q: expected address::module::name", ErrInvalidFunctionID, s)
	}
	for _, p := range parts {
		if p == "" {
			return FunctionID{}, fmt.Errorf("%w %q: empty segment", ErrInvalidFunctionID, s)
		}
	}

	addr := strings.TrimPrefix(strings.ToLower(parts[0]), "0x")
	if _, ok := new(big.Int).SetString(addr, 16); !ok || len(addr) > 64 {
		return FunctionID{}, fmt.Errorf("%w %q: bad address %s", ErrInvalidFunctionID, s, parts[0])
	}

	return FunctionID{
		Address: "0x" + addr,
		Module:  parts[1],
		Name:    parts[2],
	}, nil
}

// ParseTypeArgs splits a comma separated list of type tags.
// Commas nested inside <...> belong to the enclosing tag.
func ParseTypeArgs(s string) ([]string, error) {
	var (
		tags  []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced '>' in type arguments %q", s)
			}
		case ',':
			if depth == 0 {
				tags = appendTag(tags, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '<' in type arguments %q", s)
	}
	tags = appendTag(tags, s[start:])
	return tags, nil
}

func appendTag(tags []string, tag string) []string {
	tag = strings.Join(strings.Fields(tag), "")
	if tag == "" {
		return tags
	}
	return append(tags, tag)
}

// ParseViewArgs splits a comma separated argument list. Every argument is sent as a string.
func ParseViewArgs(s string) []any {
	if strings.TrimSpace(s) == "" {
		return []any{}
	}
	parts := strings.Split(s, ",")
	args := make([]any, 0, len(parts))
	for _, p := range parts {
		args = append(args, strings.TrimSpace(p))
	}
	return args
}
