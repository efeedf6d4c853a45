package executor

import (
	"math"
	"testing"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntSerializeFloatRange(t *testing.T) {
	out, err := intScalar{}.Serialize(float64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), out)

	for _, f := range []float64{1e20, -1e20, float64(math.MaxInt64), 1.5, math.NaN(), math.Inf(1)} {
		_, err := intScalar{}.Serialize(f)
		require.Error(t, err, "%v", f)
		assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
	}
}

func TestIntParseValueRejectsOverflow(t *testing.T) {
	_, err := intScalar{}.ParseValue(float64(math.MaxInt32) + 1)
	assert.Equal(t, apperror.CodeValidationFailure, apperror.CodeOf(err))

	v, err := intScalar{}.ParseValue(float64(math.MaxInt32))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, v)
}

func TestIDParseValueFloatRange(t *testing.T) {
	v, err := idScalar{}.ParseValue(float64(7))
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	_, err = idScalar{}.ParseValue(1e20)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidationFailure, apperror.CodeOf(err))
}
