package decimal

import (
	"errors"
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParse(t *testing.T) {
	cases := []struct {
		src  string
		want Decimal
	}{
		{"0", New(0, 0)},
		{"1", New(1, 0)},
		{"1.1", New(11, 1)},
		{"11.11", New(1111, 2)},
		{"11.111", New(11111, 3)},
		{"1.2345", New(12345, 4)},
		{"1.10", New(110, 2)},
		{".5", New(5, 1)},
		{"5.", New(5, 0)},
		{"-0.25", New(-25, 2)},
		{"9223372036854775807", New(math.MaxInt64, 0)},
		{"-9223372036854775808", New(math.MinInt64, 0)},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Parse(c.src)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{"", ".", "-", "1.2.3", "1a", "1-2", "+1", "9223372036854775808"}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "%q gave %v", src, err)
			assert.Equal(t, src, perr.Text)
		})
	}
	_, err := Parse("99999999999999999999")
	assert.IsError(t, err, ErrOverflow)
}

func TestString(t *testing.T) {
	cases := []struct {
		d    Decimal
		want string
	}{
		{New(0, 0), "0"},
		{New(1, 0), "1"},
		{New(11, 1), "1.1"},
		{New(1111, 2), "11.11"},
		{New(11111, 3), "11.111"},
		{New(12345, 4), "1.2345"},
		{New(105, 2), "1.05"},
		{New(5, 3), "0.005"},
		{New(-1, 1), "-0.1"},
		{New(-105, 2), "-1.05"},
		{New(-7, 0), "-7"},
		{New(0, 2), "0.00"},
		{New(math.MinInt64, 1), "-922337203685477580.8"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.d.String())
	}
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{"0", "1", "1.1", "11.11", "1.2345", "0.05", "-3.001", "100", "1.10"} {
		d, err := Parse(src)
		assert.NoError(t, err)
		assert.Equal(t, src, d.String())
	}
}

func TestRescale(t *testing.T) {
	cases := []struct {
		d     Decimal
		scale uint8
		want  Decimal
	}{
		{New(0, 0), 1, New(0, 1)},
		{New(1, 0), 1, New(10, 1)},
		{New(12345, 3), 5, New(1234500, 5)},
		{New(-12, 1), 3, New(-1200, 3)},
		{New(1200, 3), 1, New(12, 1)},
	}
	for _, c := range cases {
		got, err := c.d.Rescale(c.scale)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
	_, err := New(math.MaxInt64/5, 0).Rescale(1)
	assert.IsError(t, err, ErrOverflow)
}

func TestPack(t *testing.T) {
	cases := []struct {
		d, want Decimal
	}{
		{New(0, 5), New(0, 0)},
		{New(10, 1), New(1, 0)},
		{New(1200, 3), New(12, 1)},
		{New(-500, 2), New(-5, 0)},
		{New(101, 1), New(101, 1)},
		{New(7, 0), New(7, 0)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.d.Pack())
	}
}

func TestAlign(t *testing.T) {
	a, b, err := align(New(1, 0), New(25, 2))
	assert.NoError(t, err)
	assert.Equal(t, New(100, 2), a)
	assert.Equal(t, New(25, 2), b)
	a, b, err = align(New(25, 2), New(3, 1))
	assert.NoError(t, err)
	assert.Equal(t, New(25, 2), a)
	assert.Equal(t, New(30, 2), b)
}

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"0.1", "0.2", "0.3"},
		{"0.25", "0.75", "1"},
		{"1.05", "-1.05", "0"},
		{"-0.5", "0.25", "-0.25"},
		{"123.456", "0.0004", "123.4564"},
	}
	for _, c := range cases {
		a, _ := Parse(c.a)
		b, _ := Parse(c.b)
		got, err := a.Add(b)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "%s + %s", c.a, c.b)
	}
	_, err := New(math.MaxInt64, 0).Add(New(1, 0))
	assert.IsError(t, err, ErrOverflow)
}

func TestSub(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "2", "-1"},
		{"0.1", "0.2", "-0.1"},
		{"0.1", "0.1", "0"},
		{"0.25", "0.35", "-0.1"},
		{"10", "0.01", "9.99"},
	}
	for _, c := range cases {
		a, _ := Parse(c.a)
		b, _ := Parse(c.b)
		got, err := a.Sub(b)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "%s - %s", c.a, c.b)
	}
	_, err := New(math.MinInt64, 0).Sub(New(1, 0))
	assert.IsError(t, err, ErrOverflow)
}

func TestResultsArePacked(t *testing.T) {
	a, _ := Parse("0.10")
	b, _ := Parse("0.20")
	got, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, New(3, 1), got)
	got, err = a.Sub(a)
	assert.NoError(t, err)
	assert.Equal(t, New(0, 0), got)
}

func TestEqual(t *testing.T) {
	assert.True(t, New(10, 1).Equal(New(1, 0)))
	assert.True(t, New(0, 3).Equal(Decimal{}))
	assert.False(t, New(1, 1).Equal(New(1, 0)))
	assert.NotEqual(t, New(10, 1), New(1, 0))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, New(-3, 2).Sign())
	assert.Equal(t, 0, New(0, 2).Sign())
	assert.Equal(t, 1, New(3, 2).Sign())
}
