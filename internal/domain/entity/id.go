package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identificador asignado por el backend. Puede llegar como número (json-server)
// o como texto ("VTA-0007"); se normaliza a string y se emite como número cuando
// su forma textual es un entero canónico.
type ID string

func (id ID) String() string { return string(id) }

// IsZero indica si el ID está vacío.
func (id ID) IsZero() bool { return id == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id inválido %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

// IDPtr atajo para referencias opcionales (categoriaId).
func IDPtr(s string) *ID {
	if s == "" {
		return nil
	}
	id := ID(s)
	return &id
}
