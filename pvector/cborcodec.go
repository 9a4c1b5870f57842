package pvector

import (
	"math"

	"github.com/fxamacker/cbor/v2"
)

// NewDeterministicEncOpts returns the core deterministic encoding options
// (RFC 8949 section 4.2.1): shortest form integers, sorted map keys and no
// indefinite lengths. Equal vectors always encode to identical bytes.
func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewDeterministicDecOpts returns decoding options that reject anything the
// deterministic encoder would never produce. Arrays may be as long as the
// cbor library allows, so any vector that encodes also decodes.
func NewDeterministicDecOpts() cbor.DecOptions {
	return cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      cbor.IndefLengthForbidden,
		IntDec:           cbor.IntDecConvertNone, // unsigned int decodes to uint64
		MaxArrayElements: math.MaxInt32,
	}
}

type CBOROptions struct {
	encOpts cbor.EncOptions
	decOpts cbor.DecOptions
}

type CBOROption func(*CBOROptions)

func WithEncOptions(opts cbor.EncOptions) CBOROption {
	return func(o *CBOROptions) {
		o.encOpts = opts
	}
}

func WithDecOptions(opts cbor.DecOptions) CBOROption {
	return func(o *CBOROptions) {
		o.decOpts = opts
	}
}

// CBORCodec encodes and decodes values, vectors included, with a fixed pair
// of cbor modes.
type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

// NewCBORCodec creates a codec using the deterministic options unless
// overridden.
func NewCBORCodec(opts ...CBOROption) (CBORCodec, error) {
	options := CBOROptions{
		encOpts: NewDeterministicEncOpts(),
		decOpts: NewDeterministicDecOpts(),
	}
	for _, o := range opts {
		o(&options)
	}

	var err error
	codec := CBORCodec{}
	if codec.encMode, err = options.encOpts.EncMode(); err != nil {
		return CBORCodec{}, err
	}
	if codec.decMode, err = options.decOpts.DecMode(); err != nil {
		return CBORCodec{}, err
	}
	return codec, nil
}

func (c CBORCodec) MarshalCBOR(v any) ([]byte, error) {
	return c.encMode.Marshal(v)
}

func (c CBORCodec) UnmarshalInto(data []byte, v any) error {
	return c.decMode.Unmarshal(data, v)
}

// EncodeVector encodes v as a CBOR array of its elements using the codec's
// encoding mode.
func EncodeVector[T any](c CBORCodec, v Vector[T]) ([]byte, error) {
	return c.encMode.Marshal(v.ToSlice())
}

// DecodeVector decodes a CBOR array (or null) using the codec's decoding
// mode and bulk builds the result.
func DecodeVector[T any](c CBORCodec, data []byte) (Vector[T], error) {
	var items []T
	if err := c.decMode.Unmarshal(data, &items); err != nil {
		return Vector[T]{}, err
	}
	return fromOwned(items), nil
}

// vectorCodec is used by the Vector marshalling methods so that a vector
// nested in any other value still encodes deterministically. Those methods
// always use the default modes, whichever codec drives the outer value. Use
// EncodeVector and DecodeVector to apply a codec's own options to a vector.
var vectorCodec = mustCBORCodec()

func mustCBORCodec() CBORCodec {
	codec, err := NewCBORCodec()
	if err != nil {
		panic(err)
	}
	return codec
}

// MarshalCBOR encodes the vector as a single CBOR array of its elements in
// index order. The tree shape is not encoded.
func (v Vector[T]) MarshalCBOR() ([]byte, error) {
	return EncodeVector(vectorCodec, v)
}

// UnmarshalCBOR decodes a CBOR array (or null, for the empty vector) and
// bulk builds the result.
func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	decoded, err := DecodeVector[T](vectorCodec, data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
