package scalars

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"
	"time"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestDateRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 123456000, -86400000, 1700000000123} {
		parsed, err := Date{}.ParseValue(float64(ms))
		require.NoError(t, err)

		out, err := Date{}.Serialize(parsed)
		require.NoError(t, err)
		assert.Equal(t, ms, out)

		lit, err := Date{}.ParseLiteral(&ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(ms, 10)})
		require.NoError(t, err)
		out, err = Date{}.Serialize(lit)
		require.NoError(t, err)
		assert.Equal(t, ms, out)
	}
}

func TestDateParseLiteral(t *testing.T) {
	v, err := Date{}.ParseLiteral(&ast.Value{Kind: ast.IntValue, Raw: "123456000"})
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(123456000).UTC(), v)

	for _, kind := range []ast.ValueKind{ast.StringValue, ast.FloatValue, ast.BooleanValue, ast.EnumValue} {
		v, err := Date{}.ParseLiteral(&ast.Value{Kind: kind, Raw: "1965"})
		assert.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestDateParseValueRejectsNonNumbers(t *testing.T) {
	for _, in := range []any{"1965-01-01", true, 1.5, map[string]any{}} {
		_, err := Date{}.ParseValue(in)
		require.Error(t, err, "%v", in)
		assert.Equal(t, apperror.CodeValidationFailure, apperror.CodeOf(err))
	}

	v, err := Date{}.ParseValue(json.Number("42"))
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(42).UTC(), v)
}

func TestDateParseValueRejectsOutOfRange(t *testing.T) {
	for _, in := range []any{1e20, -1e20, float64(math.MaxInt64), json.Number("1e20")} {
		_, err := Date{}.ParseValue(in)
		require.Error(t, err, "%v", in)
		assert.Equal(t, apperror.CodeValidationFailure, apperror.CodeOf(err))
	}

	v, err := Date{}.ParseValue(float64(math.MinInt64))
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(math.MinInt64).UTC(), v)
}

func TestDateSerialize(t *testing.T) {
	ts := time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC)

	out, err := Date{}.Serialize(&ts)
	require.NoError(t, err)
	assert.Equal(t, ts.UnixMilli(), out)

	var missing *time.Time
	out, err = Date{}.Serialize(missing)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = Date{}.Serialize("yesterday")
	assert.Error(t, err)
}
