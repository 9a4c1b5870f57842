package pvector_test

import (
	"testing"

	"github.com/forestrie/go-pvector/pvector"
	"github.com/forestrie/go-pvector/pvectortesting"
	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBORRoundTrip(t *testing.T) {
	codec, err := pvector.NewCBORCodec()
	require.NoError(t, err)

	for _, n := range []int{0, 1, 33, 1100, 200000} {
		v := pvector.FromSlice(pvectortesting.Sequence(n))
		data, err := codec.MarshalCBOR(v)
		require.NoError(t, err)

		var decoded pvector.Vector[int]
		require.NoError(t, codec.UnmarshalInto(data, &decoded))
		require.True(t, pvector.Equal(v, decoded), "n=%d", n)
		require.Equal(t, v.Height(), decoded.Height())
	}
}

func TestCBORCodecOptionsApplyToVectors(t *testing.T) {
	decOpts := pvector.NewDeterministicDecOpts()
	decOpts.MaxArrayElements = 16
	small, err := pvector.NewCBORCodec(pvector.WithDecOptions(decOpts))
	require.NoError(t, err)
	codec, err := pvector.NewCBORCodec()
	require.NoError(t, err)

	data, err := pvector.EncodeVector(codec, pvector.FromSlice(pvectortesting.Sequence(100)))
	require.NoError(t, err)

	_, err = pvector.DecodeVector[int](small, data)
	require.Error(t, err)

	decoded, err := pvector.DecodeVector[int](codec, data)
	require.NoError(t, err)
	assert.True(t, pvector.EqualSlice(decoded, pvectortesting.Sequence(100)))

	// at the limit is fine
	data, err = pvector.EncodeVector(codec, pvector.FromSlice(pvectortesting.Sequence(16)))
	require.NoError(t, err)
	decoded, err = pvector.DecodeVector[int](small, data)
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Len())
}

func TestCBORCodecEncOptionsApplyToVectors(t *testing.T) {
	encOpts := pvector.NewDeterministicEncOpts()
	encOpts.ShortestFloat = cbor.ShortestFloatNone
	wide, err := pvector.NewCBORCodec(pvector.WithEncOptions(encOpts))
	require.NoError(t, err)
	codec, err := pvector.NewCBORCodec()
	require.NoError(t, err)

	v := pvector.New(1.5)
	shortest, err := pvector.EncodeVector(codec, v)
	require.NoError(t, err)
	full, err := pvector.EncodeVector(wide, v)
	require.NoError(t, err)

	// 1.5 fits a half precision float unless shortest form is turned off
	assert.Equal(t, []byte{0x81, 0xf9, 0x3e, 0x00}, shortest)
	assert.Len(t, full, 10)
}

func TestCBOREncodingIsShapeIndependent(t *testing.T) {
	grown := pvectortesting.AppendBuilt(2000)
	bulk := pvector.FromSlice(pvectortesting.Sequence(2000))

	a, err := grown.MarshalCBOR()
	require.NoError(t, err)
	b, err := bulk.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// and it is just the array of elements
	plain, err := cbor.Marshal(pvectortesting.Sequence(2000))
	require.NoError(t, err)
	assert.Equal(t, plain, a)
}

func TestCBOREmptyIsAnEmptyArray(t *testing.T) {
	data, err := pvector.Empty[int]().MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, data)

	var v pvector.Vector[int]
	require.NoError(t, v.UnmarshalCBOR([]byte{0xf6})) // null
	assert.True(t, v.IsEmpty())
}

func TestCBORNested(t *testing.T) {
	type record struct {
		Name  string                 `cbor:"1,keyasint"`
		Items pvector.Vector[string] `cbor:"2,keyasint"`
	}
	codec, err := pvector.NewCBORCodec()
	require.NoError(t, err)

	in := record{Name: "letters", Items: pvector.New("a", "b", "c")}
	data, err := codec.MarshalCBOR(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, codec.UnmarshalInto(data, &out))
	assert.Equal(t, "letters", out.Name)
	assert.True(t, pvector.Equal(in.Items, out.Items))
}

func TestCBORRejectsMismatchedElements(t *testing.T) {
	data, err := pvector.New("a", "b").MarshalCBOR()
	require.NoError(t, err)

	var v pvector.Vector[int]
	require.Error(t, v.UnmarshalCBOR(data))
}

func TestJSONRoundTrip(t *testing.T) {
	v := pvectortesting.AppendBuilt(50)
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded pvector.Vector[int]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, pvector.Equal(v, decoded))

	data, err = json.Marshal(pvector.Empty[int]())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	decoded = pvector.Vector[int]{}
	require.NoError(t, json.Unmarshal([]byte("null"), &decoded))
	assert.True(t, decoded.IsEmpty())

	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &decoded))
}
