package screen

import (
	"reflect"
	"strings"
)

// FieldType selects the input rendered for a field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldEnum     FieldType = "enum"
)

type Option struct {
	Value string
	Label string
}

// FieldConfig overrides what DeriveFields infers for one field.
type FieldConfig struct {
	Type        FieldType
	Label       string
	Placeholder string
	Description string
	Options     []Option
}

// Field is one render-ready drawer input.
type Field struct {
	Name        string
	Type        FieldType
	Label       string
	Placeholder string
	Description string
	Required    bool
	Options     []Option
	Value       string
	Error       string
}

// DeriveFields builds the inputs for a request struct from its json and
// validate tags, in declaration order. configs is keyed by json name.
func DeriveFields(schema any, configs map[string]FieldConfig) []Field {
	rt := reflect.TypeOf(schema)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}
		rules := sf.Tag.Get("validate")
		f := Field{
			Name:     name,
			Type:     inferType(name, sf.Type, rules),
			Label:    Label(name),
			Required: hasRule(rules, "required"),
			Options:  enumOptions(rules),
		}

		if cfg, ok := configs[name]; ok {
			if cfg.Type != "" {
				f.Type = cfg.Type
			}
			if cfg.Label != "" {
				f.Label = cfg.Label
			}
			if cfg.Options != nil {
				f.Options = cfg.Options
			}
			f.Placeholder = cfg.Placeholder
			f.Description = cfg.Description
		}
		fields = append(fields, f)
	}
	return fields
}

func inferType(name string, t reflect.Type, rules string) FieldType {
	if hasRule(rules, "oneof") {
		return FieldEnum
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return FieldNumber
	}
	switch {
	case hasRule(rules, "email"):
		return FieldEmail
	case strings.Contains(name, "password"):
		return FieldPassword
	}
	return FieldText
}

func hasRule(rules, name string) bool {
	for _, r := range strings.Split(rules, ",") {
		key, _, _ := strings.Cut(r, "=")
		if key == name {
			return true
		}
	}
	return false
}

func enumOptions(rules string) []Option {
	for _, r := range strings.Split(rules, ",") {
		key, param, _ := strings.Cut(r, "=")
		if key != "oneof" {
			continue
		}
		values := strings.Fields(param)
		opts := make([]Option, len(values))
		for i, v := range values {
			opts[i] = Option{Value: v, Label: Capitalize(TrimUnderscore(v))}
		}
		return opts
	}
	return nil
}

// WithValues fills field values from values and field errors from errs.
func WithValues(fields []Field, values map[string]string, errs map[string]string) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Value = values[f.Name]
		f.Error = errs[f.Name]
		out[i] = f
	}
	return out
}
