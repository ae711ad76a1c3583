package tinyclp

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Extender can be implemented by the struct passed to Load (or by any of
// its nested structs) to validate or adjust the loaded values once every
// field has been filled.
type Extender interface {
	Extend() error
}

/*
Load takes a pointer to a structure and fills it from the parser's argument
vector according to the `flag` meta tags defined on the structure's fields.

Example of the input structure:

	type Params struct {
		Img    string  `flag:"img|Image to show|default.png"`
		Scale  float64 `flag:"scale|Scale factor|1.0"`
		Rounds int     `flag:"rounds|Iteration count|3"`
		Poly   bool    `flag:"poly|Use polynomial interpolation"`
	}

The tag value consists of up to three parts separated by the '|' character.
Only the first value is mandatory. The first value is the flag name, looked
up on the command line as "-name". The second value is the flag's
description for the usage output. The third value is a textual default; it
runs through the same conversion as a command-line token, so for a bool
field any non-empty default reads as true. Fields without a flag tag are
skipped and nested structs are walked recursively.

Each tagged field costs one lookup via Parse, so a loaded struct shows up
in the usage output flag by flag, in field order.

If the Params type or any of its nested structs implements the Extender
interface then its Extend method is called at the end of the setup. This
can be used for the validation or modification of the field values.

In case of an error, the passed structure is set to its zero value and the
error is returned.
*/
func Load(p *Parser, params interface{}) (retErr error) {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return &InvalidParamsError{Type: reflect.TypeOf(params)}
	}

	defer func() {
		if retErr != nil {
			pEl := rv.Elem()
			pEl.Set(reflect.Zero(pEl.Type()))
		}
	}()

	var extFns []func() error
	if err := loadStruct(p, params, &extFns); err != nil {
		return err
	}

	for _, extFn := range extFns {
		if err := extFn(); err != nil {
			return errors.Wrap(err, "running flag extensions failed")
		}
	}
	return nil
}

// loadStruct fills one struct level and collects the Extend methods found
// along the way so they can run after every field is set.
func loadStruct(p *Parser, params interface{}, extFns *[]func() error) error {
	v := reflect.ValueOf(params).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		fld := v.Field(i)
		if !fld.CanSet() {
			continue
		}

		if fld.Kind() == reflect.Struct {
			if err := loadStruct(p, fld.Addr().Interface(), extFns); err != nil {
				return err
			}
			continue
		}

		meta, ok := t.Field(i).Tag.Lookup("flag")
		if !ok {
			continue
		}

		name, details, defRaw := splitFlagTag(meta)
		switch fld.Interface().(type) {
		case string:
			loadField[string](p, fld, name, details, defRaw)
		case bool:
			loadField[bool](p, fld, name, details, defRaw)
		case int:
			loadField[int](p, fld, name, details, defRaw)
		case float64:
			loadField[float64](p, fld, name, details, defRaw)
		default:
			return errors.Errorf("unsupported flag type %s for field %s", fld.Type(), t.Field(i).Name)
		}
	}

	if e, ok := params.(Extender); ok {
		*extFns = append(*extFns, e.Extend)
	}
	return nil
}

// loadField resolves one tagged field through Parse so the lookup also
// lands in the parser's usage record.
func loadField[T Value](p *Parser, fld reflect.Value, name, details, defRaw string) {
	def := DefaultOf[T]()
	if defRaw != "" {
		def = convert[T](defRaw)
	}
	fld.Set(reflect.ValueOf(Parse(p, "-"+name, def, details)))
}

// splitFlagTag breaks a `flag` tag value into its name, details and raw
// default parts. Only the name is mandatory; missing details default to a
// single space so the usage detail line stays aligned.
func splitFlagTag(meta string) (name, details, defRaw string) {
	parts := strings.Split(meta, "|")
	name = strings.TrimSpace(parts[0])
	details = " "
	if len(parts) > 1 {
		details = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		defRaw = strings.TrimSpace(parts[2])
	}
	return name, details, defRaw
}
