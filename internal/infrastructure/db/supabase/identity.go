package supabase

import (
	"encoding/json"
	"strings"
)

// ID is a store-assigned identity. Projects use either bigint or uuid
// primary keys, so ID preserves the raw JSON token: a dependent row insert
// sends the generated identity back exactly as the store produced it.
type ID struct {
	raw json.RawMessage
}

func (id *ID) UnmarshalJSON(b []byte) error {
	id.raw = append(id.raw[:0], b...)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// String renders the identity without JSON quoting.
func (id ID) String() string {
	s := string(id.raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// IDFrom rebuilds an identity from its string rendering. Purely numeric
// identities become JSON numbers again; everything else is quoted.
func IDFrom(s string) ID {
	if isNumeric(s) {
		return ID{raw: json.RawMessage(s)}
	}
	quoted, _ := json.Marshal(s)
	return ID{raw: quoted}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
