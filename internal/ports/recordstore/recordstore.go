// Package recordstore define el vocabulario común de los repositorios:
// filtro de igualdad y normalización de timestamps.
package recordstore

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// ErrNotFound: el id no resuelve a ningún registro.
// Los backends lo devuelven en Update/Delete (nunca hacen blind writes).
var ErrNotFound = errors.New("not found")

// Where es el único predicado soportado remotamente: igualdad sobre un campo.
type Where struct {
	Field string
	Value string
}

// Eq arma un Where. Valor vacío o "all" = sin restricción (nil).
func Eq(field, value string) *Where {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return nil
	}
	return &Where{Field: field, Value: value}
}

// NormalizeTime convierte la representación nativa de un timestamp del
// backend a time.Time (UTC). ok=false si el valor está ausente; en ese caso
// el caller deja el campo en cero / nil, sin inventar un default.
//
// Soporta: time.Time, *time.Time, sql.NullTime, millis unix (int64,
// *int64, sql.NullInt64) y strings RFC3339.
func NormalizeTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case sql.NullTime:
		if !t.Valid {
			return time.Time{}, false
		}
		return NormalizeTime(t.Time)
	case int64:
		if t == 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(t).UTC(), true
	case *int64:
		if t == nil {
			return time.Time{}, false
		}
		return NormalizeTime(*t)
	case sql.NullInt64:
		if !t.Valid {
			return time.Time{}, false
		}
		return NormalizeTime(t.Int64)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.UTC(), true
	default:
		return time.Time{}, false
	}
}

// TimePtr es NormalizeTime para campos opcionales (*time.Time).
func TimePtr(v any) *time.Time {
	t, ok := NormalizeTime(v)
	if !ok {
		return nil
	}
	return &t
}

// ToMillis es la inversa de NormalizeTime para backends que guardan millis.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

// NullMillis guarda un *time.Time opcional como millis (NULL si nil).
func NullMillis(t *time.Time) sql.NullInt64 {
	if t == nil || t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UTC().UnixMilli(), Valid: true}
}
