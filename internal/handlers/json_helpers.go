package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"
)

// JSONResponse sends a JSON response with nil slices rendered as [] instead
// of null, which is what array-typed frontend code expects
func JSONResponse(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(normalizeSlices(data))
}

// normalizeSlices recursively replaces nil slices with empty ones
func normalizeSlices(data interface{}) interface{} {
	if data == nil {
		return data
	}

	v := reflect.ValueOf(data)
	timeType := reflect.TypeOf(time.Time{})

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() || v.Elem().Type() == timeType {
			return data
		}
		normalized := normalizeSlices(v.Elem().Interface())
		result := reflect.New(v.Elem().Type())
		result.Elem().Set(reflect.ValueOf(normalized))
		return result.Interface()

	case reflect.Slice:
		if v.IsNil() {
			return reflect.MakeSlice(v.Type(), 0, 0).Interface()
		}
		result := reflect.MakeSlice(v.Type(), v.Len(), v.Cap())
		for i := 0; i < v.Len(); i++ {
			result.Index(i).Set(reflect.ValueOf(normalizeSlices(v.Index(i).Interface())))
		}
		return result.Interface()

	case reflect.Struct:
		if v.Type() == timeType {
			return data
		}
		result := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			if !field.CanInterface() || !result.Field(i).CanSet() {
				continue
			}
			fieldType := field.Type()
			isTime := fieldType == timeType ||
				(fieldType.Kind() == reflect.Ptr && fieldType.Elem() == timeType)
			switch {
			case isTime:
				result.Field(i).Set(field)
			case field.Kind() == reflect.Slice || field.Kind() == reflect.Ptr || field.Kind() == reflect.Struct:
				result.Field(i).Set(reflect.ValueOf(normalizeSlices(field.Interface())))
			default:
				result.Field(i).Set(field)
			}
		}
		return result.Interface()

	default:
		return data
	}
}
