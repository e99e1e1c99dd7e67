package docx

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tngraf/tethys-docx-go/pkg/docx/ooxml"
)

// PropertyKind enumerates the value types a custom document property can
// hold.
type PropertyKind int

const (
	PropertyText PropertyKind = iota
	PropertyYesNo
	PropertyDateTime
	PropertyInteger
	PropertyDouble
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyText:
		return "text"
	case PropertyYesNo:
		return "yesno"
	case PropertyDateTime:
		return "datetime"
	case PropertyInteger:
		return "integer"
	case PropertyDouble:
		return "double"
	default:
		return "unknown"
	}
}

// ParsePropertyKind maps a kind name (as used by the CLI) to a PropertyKind.
func ParsePropertyKind(s string) (PropertyKind, error) {
	switch s {
	case "text":
		return PropertyText, nil
	case "yesno", "bool":
		return PropertyYesNo, nil
	case "datetime", "date":
		return PropertyDateTime, nil
	case "integer", "int":
		return PropertyInteger, nil
	case "double", "float":
		return PropertyDouble, nil
	default:
		return PropertyText, fmt.Errorf("unknown property kind %q", s)
	}
}

// PropertyValue is a tagged variant: each constructor carries its own
// strongly-typed payload, so a value built through them can never mismatch
// its kind. Values from untyped sources go through PropertyValueOf, which is
// the only place a type-mismatch error can arise.
type PropertyValue struct {
	kind PropertyKind
	vt   ooxml.VariantValue
}

// Kind returns the declared kind of the value.
func (v PropertyValue) Kind() PropertyKind { return v.kind }

// Serialized returns the value's wire form: RFC3339 UTC for date-times,
// "true"/"false" for yes/no, decimal text for numbers.
func (v PropertyValue) Serialized() string { return v.vt.Value }

// Text builds a text property value.
func Text(s string) PropertyValue {
	return PropertyValue{kind: PropertyText, vt: ooxml.VariantValue{Type: ooxml.VTLpwstr, Value: s}}
}

// YesNo builds a boolean property value.
func YesNo(b bool) PropertyValue {
	return PropertyValue{kind: PropertyYesNo, vt: ooxml.VariantValue{Type: ooxml.VTBool, Value: strconv.FormatBool(b)}}
}

// Integer builds a 32-bit integer property value.
func Integer(i int32) PropertyValue {
	return PropertyValue{kind: PropertyInteger, vt: ooxml.VariantValue{Type: ooxml.VTI4, Value: strconv.FormatInt(int64(i), 10)}}
}

// Double builds a floating-point property value.
func Double(f float64) PropertyValue {
	return PropertyValue{kind: PropertyDouble, vt: ooxml.VariantValue{Type: ooxml.VTR8, Value: strconv.FormatFloat(f, 'g', -1, 64)}}
}

// DateTime builds a date-time property value, stored in UTC.
func DateTime(t time.Time) PropertyValue {
	return PropertyValue{kind: PropertyDateTime, vt: ooxml.VariantValue{Type: ooxml.VTFiletime, Value: t.UTC().Format(time.RFC3339)}}
}

// PropertyValueOf validates an untyped value against a declared kind and
// converts it. Text accepts any value and stringifies it; every other kind
// requires a matching runtime type. The name is only used in error messages.
func PropertyValueOf(name string, kind PropertyKind, value interface{}) (PropertyValue, error) {
	mismatch := func() (PropertyValue, error) {
		return PropertyValue{}, &PropertyTypeError{Name: name, Kind: kind, Got: value}
	}
	switch kind {
	case PropertyText:
		if s, ok := value.(string); ok {
			return Text(s), nil
		}
		return Text(fmt.Sprintf("%v", value)), nil
	case PropertyYesNo:
		b, ok := value.(bool)
		if !ok {
			return mismatch()
		}
		return YesNo(b), nil
	case PropertyDateTime:
		t, ok := value.(time.Time)
		if !ok {
			return mismatch()
		}
		return DateTime(t), nil
	case PropertyInteger:
		switch n := value.(type) {
		case int32:
			return Integer(n), nil
		case int:
			if n < math.MinInt32 || n > math.MaxInt32 {
				return mismatch()
			}
			return Integer(int32(n)), nil
		case int64:
			if n < math.MinInt32 || n > math.MaxInt32 {
				return mismatch()
			}
			return Integer(int32(n)), nil
		default:
			return mismatch()
		}
	case PropertyDouble:
		switch f := value.(type) {
		case float64:
			return Double(f), nil
		case float32:
			return Double(float64(f)), nil
		default:
			return mismatch()
		}
	default:
		return mismatch()
	}
}

// SetCustomProperty sets or overwrites the named custom property. When a
// property of the same name already existed, its previous serialized value is
// returned with existed true. Property ids are renumbered contiguously from 2
// after every mutation; the metadata part expects contiguous ids.
func (d *Document) SetCustomProperty(name string, value PropertyValue) (previous string, existed bool, err error) {
	custom, err := d.customPart()
	if err != nil {
		return "", false, err
	}
	if prev := custom.Lookup(name); prev != nil {
		previous = prev.Value.Value
		existed = true
		custom.Remove(name)
	}
	custom.Properties = append(custom.Properties, ooxml.CustomProperty{
		FmtID: ooxml.PropertySetFormatID,
		Name:  name,
		Value: ooxml.VariantValue{Type: value.vt.Type, Value: value.vt.Value},
	})
	custom.Renumber()
	d.logger.Debug("set custom property %q (%s)", name, value.kind)
	return previous, existed, nil
}

// SetCustomPropertyValue validates an untyped value against the declared kind
// and sets it. A mismatched runtime type returns a PropertyTypeError and
// writes nothing.
func (d *Document) SetCustomPropertyValue(name string, kind PropertyKind, value interface{}) (string, bool, error) {
	pv, err := PropertyValueOf(name, kind, value)
	if err != nil {
		return "", false, err
	}
	return d.SetCustomProperty(name, pv)
}

// CustomProperty returns the serialized value of the named property and
// whether it exists.
func (d *Document) CustomProperty(name string) (string, bool) {
	custom, err := d.customPart()
	if err != nil {
		d.logger.Warn("failed to read custom properties: %v", err)
		return "", false
	}
	prop := custom.Lookup(name)
	if prop == nil {
		return "", false
	}
	return prop.Value.Value, true
}

// RemoveCustomProperty deletes the named property, renumbering the remaining
// ids, and reports whether it was present.
func (d *Document) RemoveCustomProperty(name string) (bool, error) {
	custom, err := d.customPart()
	if err != nil {
		return false, err
	}
	removed := custom.Remove(name)
	if removed {
		custom.Renumber()
		d.logger.Debug("removed custom property %q", name)
	}
	return removed, nil
}

// CustomProperties returns a copy of all custom properties in id order.
func (d *Document) CustomProperties() ([]ooxml.CustomProperty, error) {
	custom, err := d.customPart()
	if err != nil {
		return nil, err
	}
	out := make([]ooxml.CustomProperty, len(custom.Properties))
	copy(out, custom.Properties)
	return out, nil
}
