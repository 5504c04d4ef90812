package testutils

import (
	"reflect"
	"strings"
	"testing"
)

type structInfo struct {
	Name         string
	FieldTypeMap map[string]string
}

// getStructFieldInfo maps the json name of every field of `v` to its
// kind, fields tagged `json:"-"` are skipped
func getStructFieldInfo(v any) structInfo {
	result := structInfo{FieldTypeMap: make(map[string]string)}
	typ := reflect.TypeOf(v)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return result
	}
	result.Name = typ.Name()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		jsonName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if jsonName == "-" {
			continue
		}
		if jsonName == "" {
			jsonName = field.Name
		}
		fieldType := field.Type
		if fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		result.FieldTypeMap[jsonName] = fieldType.Kind().String()
	}

	return result
}

// ValidateModelContract fails `t` when a json field of `i` is missing
// from `j` or has a different kind there, pointers are compared by the
// kind they point to
func ValidateModelContract(i any, j any, t *testing.T) {
	structA := getStructFieldInfo(i)
	structB := getStructFieldInfo(j)
	for structAField, structAType := range structA.FieldTypeMap {
		structBType, ok := structB.FieldTypeMap[structAField]
		if !ok {
			t.Errorf(
				"%s[%s] doesn't exist in %s",
				structA.Name,
				structAField,
				structB.Name,
			)
			continue
		}
		if structAType != structBType {
			t.Errorf(
				"%s[%s]'s type[%s] doesn't match %s[%s]'s type[%s]",
				structA.Name,
				structAField,
				structAType,
				structB.Name,
				structAField,
				structBType,
			)
		}
	}
}
