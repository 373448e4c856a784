package crud

import (
	"fmt"
	"reflect"
	"strings"
)

// Column describes one read-only column of the table. Render, when set,
// overrides the default coercion of the keyed struct field.
type Column[T Record] struct {
	Key    string
	Header string
	Render func(T) string
	Class  string
}

// FieldKind enumerates the supported form input kinds.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldSelect   FieldKind = "select"
	FieldTextarea FieldKind = "textarea"
	FieldDateTime FieldKind = "datetime-local"
)

// Option is one entry of a select field.
type Option struct {
	Value string
	Label string
}

// FormField describes one input of the create/edit form.
type FormField struct {
	Key      string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []Option
	Rows     int
}

// CellValue resolves the display value of a column for a record: the
// column's Render function when present, otherwise the keyed struct field
// coerced to a string. Nil pointer fields and unknown keys coerce to the
// empty string, never to a "nil" literal.
func CellValue[T Record](rec T, col Column[T]) string {
	if col.Render != nil {
		return col.Render(rec)
	}
	return fieldString(rec, col.Key)
}

// fieldString looks up a struct field by json tag name (falling back to a
// case-insensitive field name match) and coerces it to a string.
func fieldString(rec any, key string) string {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			if comma := strings.IndexByte(tag, ','); comma >= 0 {
				tag = tag[:comma]
			}
			if tag != "" && tag != "-" {
				name = tag
			}
		}
		if !strings.EqualFold(name, key) {
			continue
		}

		fv := v.Field(i)
		for fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return ""
			}
			fv = fv.Elem()
		}
		return fmt.Sprint(fv.Interface())
	}
	return ""
}
