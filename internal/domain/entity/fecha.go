package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Fecha es un instante que el backend puede enviar como fecha corta, RFC3339 o null.
// Se serializa siempre en RFC3339 (UTC) y como null si es cero.
type Fecha struct {
	time.Time
}

var layoutsFecha = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NuevaFecha envuelve t.
func NuevaFecha(t time.Time) Fecha { return Fecha{Time: t} }

// ParsearFecha intenta los formatos aceptados por el backend.
func ParsearFecha(s string) (Fecha, error) {
	if s == "" {
		return Fecha{}, nil
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return Fecha{Time: t}, nil
		}
	}
	return Fecha{}, fmt.Errorf("fecha no reconocida: %q", s)
}

// MarshalJSON implementa json.Marshaler.
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.UTC().Format(time.RFC3339))
}

// UnmarshalJSON implementa json.Unmarshaler.
func (f *Fecha) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = Fecha{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	parsed, err := ParsearFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Antes informa si f es anterior a otra; una fecha vacía nunca es anterior.
func (f Fecha) Antes(otra Fecha) bool {
	if f.IsZero() || otra.IsZero() {
		return false
	}
	return f.Time.Before(otra.Time)
}
