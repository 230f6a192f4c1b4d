// Package rights models the permission set a group member holds.
//
// Rights are a closed set of three privileges: READ, WRITE and DELETE.
// The database and the API keep the historical pipe-separated encoding
// ("READ | WRITE | DELETE"), but all checks run against the parsed bit set,
// so a privilege name can never be matched by substring accident.
package rights

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Set is a bit set over the closed privilege enum.
type Set uint8

const (
	// Read allows viewing group-scoped content and memberships.
	Read Set = 1 << iota
	// Write allows creating and updating content and memberships.
	Write
	// Delete allows removing content, memberships and the group itself.
	Delete

	// None is the default-deny empty set.
	None Set = 0
	// Full is granted to a group's creator.
	Full = Read | Write | Delete
)

var names = []struct {
	right Set
	name  string
}{
	{Read, "READ"},
	{Write, "WRITE"},
	{Delete, "DELETE"},
}

// Has reports whether every right in r is contained in s.
func (s Set) Has(r Set) bool {
	return s&r == r
}

// With returns s with r added.
func (s Set) With(r Set) Set {
	return s | r
}

// Without returns s with r removed.
func (s Set) Without(r Set) Set {
	return s &^ r
}

// String renders the legacy pipe-separated encoding, e.g.
// "READ | WRITE | DELETE". The empty set renders as "".
func (s Set) String() string {
	var parts []string
	for _, n := range names {
		if s.Has(n.right) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " | ")
}

// Parse decodes a pipe-separated rights string. Unknown tokens are an
// error; the empty string parses to None.
func Parse(encoded string) (Set, error) {
	var set Set
	for _, token := range strings.Split(encoded, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		matched := false
		for _, n := range names {
			if token == n.name {
				set = set.With(n.right)
				matched = true
				break
			}
		}
		if !matched {
			return None, fmt.Errorf("unknown right %q", token)
		}
	}
	return set, nil
}

// Value implements driver.Valuer so GORM stores the legacy encoding.
func (s Set) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *Set) Scan(value interface{}) error {
	if value == nil {
		*s = None
		return nil
	}
	str, ok := value.(string)
	if !ok {
		bytes, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("rights: cannot scan %T", value)
		}
		str = string(bytes)
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON serializes the legacy encoding.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the legacy encoding.
func (s *Set) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("rights should be a string, got %s", data)
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
