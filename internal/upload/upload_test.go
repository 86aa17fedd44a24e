package upload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"algotrace/pkg/traceerrors"
)

func TestParse_MixedSeparators(t *testing.T) {
	got, err := Parse(strings.NewReader("1, 2,3\n4 5\t6"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got)
}

func TestParse_Floats(t *testing.T) {
	got, err := Parse(strings.NewReader("1, 2.0, 3.50, 4.00, -7"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3.5, 4, -7}, got)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader("   , \n\t"))
	assert.ErrorIs(t, err, traceerrors.ErrNoNumbers)
}

func TestParse_InvalidToken(t *testing.T) {
	for _, in := range []string{"1, 2, nope, 4", "1 NaN", "inf"} {
		_, err := Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, traceerrors.ErrInvalidNumber, in)
	}
}

func TestParse_DropsUndecodableBytes(t *testing.T) {
	got, err := Parse(bytes.NewReader([]byte("1,\xff2,3")))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestParse_UTF16WithBOM(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("10;20"))
	require.NoError(t, err)
	_, err = Parse(bytes.NewReader(data))
	assert.ErrorIs(t, err, traceerrors.ErrInvalidNumber)

	data, err = enc.Bytes([]byte("10, 20\r\n30"))
	require.NoError(t, err)
	got, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, got)
}
