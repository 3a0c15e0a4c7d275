package engines

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// lookup resolves a path against data. The second return value is false if
// any segment of the path is missing.
func lookup(data any, p *path) (any, bool) {
	cur, found := child(data, p.Head)
	for _, seg := range p.Tail {
		if !found {
			return nil, false
		}
		switch {
		case seg.Key != nil:
			cur, found = child(cur, *seg.Key)
		case seg.Quoted != nil:
			cur, found = child(cur, *seg.Quoted)
		case seg.Index != nil:
			idx, err := strconv.Atoi(*seg.Index)
			if err != nil {
				return nil, false
			}
			cur, found = item(cur, idx)
		}
	}
	if !found {
		return nil, false
	}
	return cur, true
}

// indirect dereferences pointers and interfaces.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// child returns a value stored under key. Sequences and strings support the
// size, first and last pseudo keys.
func child(data any, key string) (any, bool) {
	v := indirect(reflect.ValueOf(data))
	if !v.IsValid() {
		return nil, false
	}

	switch v.Kind() {
	case reflect.Map:
		keyType := v.Type().Key()
		var mapValue reflect.Value
		switch keyType.Kind() {
		case reflect.String:
			mapValue = v.MapIndex(reflect.ValueOf(key).Convert(keyType))
		case reflect.Interface:
			mapValue = v.MapIndex(reflect.ValueOf(key))
		}
		if mapValue.IsValid() {
			return mapValue.Interface(), true
		}
		if key == "size" {
			return v.Len(), true
		}
	case reflect.Slice, reflect.Array:
		switch key {
		case "size":
			return v.Len(), true
		case "first":
			return item(data, 0)
		case "last":
			return item(data, v.Len()-1)
		}
	case reflect.String:
		if key == "size" {
			return utf8.RuneCountInString(v.String()), true
		}
	case reflect.Struct:
		field := v.FieldByName(key)
		if field.IsValid() && field.CanInterface() {
			return field.Interface(), true
		}
	}
	return nil, false
}

// item returns idx-th element of a sequence.
func item(data any, idx int) (any, bool) {
	v := indirect(reflect.ValueOf(data))
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, false
	}
	if idx < 0 || idx >= v.Len() {
		return nil, false
	}
	return v.Index(idx).Interface(), true
}

// stringify converts a looked up value to its textual form.
func stringify(data any) string {
	switch val := data.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	}

	v := indirect(reflect.ValueOf(data))
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		var sb strings.Builder
		for i := 0; i < v.Len(); i++ {
			sb.WriteString(stringify(v.Index(i).Interface()))
		}
		return sb.String()
	case reflect.Map:
		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, fmt.Sprintf("%s: %s",
				stringify(iter.Key().Interface()), stringify(iter.Value().Interface())))
		}
		sort.Strings(entries)
		return "{" + strings.Join(entries, ", ") + "}"
	}
	return fmt.Sprint(v.Interface())
}

// formatFloat keeps a fractional part for integral floats, so 1.0 stays "1.0".
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
