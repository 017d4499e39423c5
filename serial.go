package decimal

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the [json.Marshaler] interface.
// The decimal is encoded as a JSON string to avoid any loss of precision
// in decoders that read numbers as float64.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts both a quoted decimal string and a bare JSON number:
//
//	{"amount": "1.234"}
//	{"amount": 1.234}
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unquoting %s: %w", data, ErrParse)
		}
	}
	var err error
	*d, err = Parse(s)
	return err
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	return d.MarshalText()
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	return d.UnmarshalText(data)
}

// Value implements the [driver.Valuer] interface.
// The decimal is stored as its string representation.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
// It supports string, []byte, int64, and float64 source values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch v := value.(type) {
	case string:
		*d, err = Parse(v)
	case []byte:
		*d, err = Parse(string(v))
	case int64:
		*d = FromInt64(v)
	case float64:
		*d, err = FromFloat64(v)
	default:
		err = fmt.Errorf("converting %T to decimal is not supported", value)
	}
	return err
}
