package screen

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"warehouse-dashboard/internal/models"
)

// Bind decodes submitted form values into a request struct. Only fields
// present in the form are set, so optional update fields stay nil when the
// input was not rendered. Numeric inputs are parsed; an empty numeric input
// is left unset for the validator to report.
func Bind[T any](values url.Values) (T, []models.ErrorDetail) {
	var out T
	rt := reflect.TypeOf(out)
	if rt.Kind() != reflect.Struct {
		return out, []models.ErrorDetail{{Field: "form", Message: "unsupported form target"}}
	}

	data := make(map[string]any)
	var errs []models.ErrorDetail
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" || !values.Has(name) {
			continue
		}
		raw := values.Get(name)

		t := sf.Type
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				errs = append(errs, models.ErrorDetail{Field: name, Message: "must be a whole number"})
				continue
			}
			data[name] = n
		case reflect.Float32, reflect.Float64:
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs = append(errs, models.ErrorDetail{Field: name, Message: "must be a number"})
				continue
			}
			data[name] = f
		case reflect.Bool:
			b, _ := strconv.ParseBool(raw)
			data[name] = b
		default:
			data[name] = raw
		}
	}
	if len(errs) > 0 {
		return out, errs
	}

	body, err := json.Marshal(data)
	if err == nil {
		err = json.Unmarshal(body, &out)
	}
	if err != nil {
		return out, []models.ErrorDetail{{Field: "form", Message: fmt.Sprintf("could not read form: %v", err)}}
	}
	return out, nil
}

// FormValues flattens submitted values for re-rendering the drawer.
func FormValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k := range values {
		out[k] = values.Get(k)
	}
	return out
}

// ErrorMap indexes field errors by field name, keeping the first message per field.
func ErrorMap(errs []models.ErrorDetail) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}
