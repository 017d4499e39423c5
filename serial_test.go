package decimal

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Amount Decimal `json:"amount"`
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{`{"amount":"1.234"}`, "1.234"},
		{`{"amount":1234}`, "1234"},
		{`{"amount":1234.56}`, "1234.56"},
		{`{"amount":"-0.5"}`, "-0.5"},
		{`{"amount":"1.83e5"}`, "183000"},
	}
	for _, tt := range tests {
		var rec record
		err := json.Unmarshal([]byte(tt.data), &rec)
		require.NoError(t, err, "unmarshaling %s", tt.data)
		assert.Equal(t, tt.want, rec.Amount.String())
	}
}

func TestDecimal_UnmarshalJSON_Invalid(t *testing.T) {
	tests := map[string]string{
		"not a number": `{"amount":"foo"}`,
		"boolean":      `{"amount":true}`,
		"infinity":     `{"amount":"Infinity"}`,
		"nan":          `{"amount":"NaN"}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var rec record
			err := json.Unmarshal([]byte(data), &rec)
			require.Error(t, err)
		})
	}

	var rec record
	err := json.Unmarshal([]byte(`{"amount":"Infinity"}`), &rec)
	require.ErrorIs(t, err, ErrInvalidValue)
	err = json.Unmarshal([]byte(`{"amount":"foo"}`), &rec)
	require.ErrorIs(t, err, ErrParse)
}

func TestDecimal_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(record{Amount: MustParse("1.234")})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"1.234"}`, string(data))
}

func TestDecimal_JSONRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1.234", "-0.001", "123456789.123456789"} {
		in := record{Amount: MustParse(s)}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out record
		require.NoError(t, json.Unmarshal(data, &out))
		assert.True(t, in.Amount.Equal(out.Amount), "round trip of %s gave %s", in.Amount, out.Amount)
	}
}

func TestDecimal_BinaryRoundTrip(t *testing.T) {
	in := MustParse("-123.4500")
	data, err := in.MarshalBinary()
	require.NoError(t, err)

	var out Decimal
	require.NoError(t, out.UnmarshalBinary(data))
	assert.True(t, in.Equal(out))
	assert.Equal(t, in.String(), out.String())
}

func TestDecimal_Value(t *testing.T) {
	v, err := MustParse("1.234").Value()
	require.NoError(t, err)
	assert.Equal(t, "1.234", v)
}

func TestDecimal_Scan(t *testing.T) {
	tests := []struct {
		src  any
		want string
	}{
		{"1.234", "1.234"},
		{[]byte("-0.5"), "-0.5"},
		{int64(7), "7"},
		{float64(2.5), "2.5"},
	}
	for _, tt := range tests {
		var d Decimal
		require.NoError(t, d.Scan(tt.src), "scanning %v", tt.src)
		assert.Equal(t, tt.want, d.String())
	}
}

func TestDecimal_Scan_Invalid(t *testing.T) {
	var d Decimal

	require.Error(t, d.Scan(true))
	require.Error(t, d.Scan(nil))
	require.ErrorIs(t, d.Scan("Infinity"), ErrInvalidValue)
	require.ErrorIs(t, d.Scan("foo"), ErrParse)
	require.ErrorIs(t, d.Scan(math.NaN()), ErrInvalidValue)
}
