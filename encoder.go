package lounge

import (
	"context"
	"time"
)

// Encoder turns values into store-ready payloads: it clones with its
// options and marshals the plain result with its codec.
//
// Encoders hold no mutable state and are safe for concurrent use.
type Encoder struct {
	codec Codec
	opts  Options
}

// NewEncoder creates an Encoder that clones with opts and marshals with codec.
func NewEncoder(codec Codec, opts Options) *Encoder {
	e := &Encoder{
		codec: codec,
		opts:  opts,
	}
	emitEncoderCreated(context.Background(), codec.ContentType())
	return e
}

// ContentType returns the content type of the underlying codec.
func (e *Encoder) ContentType() string {
	return e.codec.ContentType()
}

// Options returns the clone options the encoder applies.
func (e *Encoder) Options() Options {
	return e.opts
}

// Encode clones v and marshals the result.
// A value that minimizes away entirely is marshaled as the codec's null.
// Errors from a document's conversion method are returned unchanged;
// codec failures are wrapped in a CodecError.
func (e *Encoder) Encode(ctx context.Context, v any) ([]byte, error) {
	start := time.Now()
	typeName := TypeName(v)
	emitEncodeStart(ctx, e.codec.ContentType(), typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, e.codec.ContentType(), typeName,
			len(retData), time.Since(start), retErr)
	}()

	plain, err := Clone(v, e.opts)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	data, err := e.codec.Marshal(plain)
	if err != nil {
		retErr = newCodecError(ErrMarshal, e.codec.ContentType(), err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// Decode unmarshals data into v.
func (e *Encoder) Decode(ctx context.Context, data []byte, v any) error {
	start := time.Now()
	emitDecodeStart(ctx, e.codec.ContentType(), len(data))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, e.codec.ContentType(), len(data), time.Since(start), retErr)
	}()

	if err := e.codec.Unmarshal(data, v); err != nil {
		retErr = newCodecError(ErrUnmarshal, e.codec.ContentType(), err)
		return retErr
	}
	return nil
}
