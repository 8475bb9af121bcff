package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID es la identidad asignada por el servidor.
// Es un sum type explícito (sin asignar | asignada) para que "todavía no
// persistido" sea un estado chequeable y no un null implícito.
// El zero value es "sin asignar". Una vez asignada, nunca se muta.
type ID struct {
	value    int64
	assigned bool
}

// NewID construye una identidad ya asignada.
func NewID(v int64) ID {
	return ID{value: v, assigned: true}
}

// IsNew indica que la entidad es transitoria (sin fila en storage).
func (id ID) IsNew() bool {
	return !id.assigned
}

// Value devuelve el valor y si está asignado.
func (id ID) Value() (int64, bool) {
	return id.value, id.assigned
}

// Int64 devuelve el valor crudo (0 si no está asignada).
// Útil para armar URLs/SQL; para decidir insert vs update usar IsNew.
func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	if !id.assigned {
		return "new"
	}
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON serializa null cuando no está asignada.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.assigned {
		return []byte("null"), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON acepta null (o ausencia) como "sin asignar".
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ID{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("id must be an integer or null: %w", err)
	}
	*id = NewID(v)
	return nil
}
