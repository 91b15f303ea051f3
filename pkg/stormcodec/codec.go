// Package stormcodec provides alternate Storm codecs backed by ugorji's
// codec library, selectable at database-open time.
package stormcodec

import (
	"bytes"

	"github.com/ugorji/go/codec"
)

// CBOR encodes to and decodes from Concise Binary Object Representation.
// https://tools.ietf.org/html/rfc7049
var CBOR = handleCodec{name: "cbor", handle: new(codec.CborHandle)}

// Binc encodes to and decodes from the Binc format.
// https://github.com/ugorji/binc
var Binc = handleCodec{name: "binc", handle: new(codec.BincHandle)}

type handleCodec struct {
	name   string
	handle codec.Handle
}

func (c handleCodec) Marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := codec.NewEncoder(&b, c.handle)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (c handleCodec) Unmarshal(b []byte, v any) error {
	dec := codec.NewDecoder(bytes.NewReader(b), c.handle)
	return dec.Decode(v)
}

func (c handleCodec) Name() string {
	return c.name
}
