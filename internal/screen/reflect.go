package screen

import (
	"reflect"
	"strings"
)

// jsonName returns the wire name of a struct field, or "" when the field is skipped.
func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" || !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// fieldByJSON looks up a field of a struct value by its json name.
func fieldByJSON(v any, key string) (reflect.Value, bool) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if jsonName(rt.Field(i)) == key {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}
