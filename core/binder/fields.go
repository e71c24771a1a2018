package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// decode copies form values into the exported fields of the struct v points to.
// Fields with no submitted value keep what they had.
func decode(v any, values map[string][]string) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() || target.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: expected a non-nil pointer to struct, got %T", ErrFailedToParseForm, v)
	}

	s := target.Elem()
	for i := range s.NumField() {
		f := s.Type().Field(i)
		if !f.IsExported() {
			continue
		}
		tag := parseFieldTag(f, "form")
		if tag.skip {
			continue
		}
		submitted := values[tag.name]
		if len(submitted) == 0 {
			continue
		}
		if err := assign(s.Field(i), submitted, tag.raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, f.Name, err)
		}
	}
	return nil
}

// assign converts submitted into dst. Scalars take the first value; slices
// take every value, splitting each on commas.
func assign(dst reflect.Value, submitted []string, raw bool) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), submitted, raw)

	case reflect.Slice:
		var items []string
		for _, s := range submitted {
			for part := range strings.SplitSeq(s, ",") {
				items = append(items, strings.TrimSpace(part))
			}
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := assign(out.Index(i), []string{item}, raw); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	return setScalar(dst, submitted[0], raw)
}

func setScalar(dst reflect.Value, s string, raw bool) error {
	switch dst.Kind() {
	case reflect.String:
		if !raw {
			s = stripControl(s)
		}
		dst.SetString(s)
	case reflect.Bool:
		b, ok := parseBool(s)
		if !ok {
			return fmt.Errorf("invalid bool value %q", s)
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", s)
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", s)
		}
		dst.SetFloat(n)
	default:
		return fmt.Errorf("unsupported type %s", dst.Kind())
	}
	return nil
}

// parseBool accepts strconv spellings plus the checkbox values on/off and yes/no.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, true
	case "off", "no", "":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

// stripControl drops every control rune except tab, including CR, LF and NUL.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
}
