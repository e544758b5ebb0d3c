package prettyfmt

import (
	"bytes"
	"io"
	"sync"
)

const maxScratchCap = 64 * 1024

var decoderPool = sync.Pool{
	New: func() any {
		return &decoder{}
	},
}

var valueReaderPool = sync.Pool{
	New: func() any {
		return &valueReader{}
	},
}

func acquireDecoder() *decoder {
	return decoderPool.Get().(*decoder)
}

func releaseDecoder(d *decoder) {
	if d == nil {
		return
	}
	d.scanner.Reset(nil)
	d.sliceReader.Reset(nil)
	d.unwrapDepth = 0
	d.silentErr = false
	if cap(d.decodedBuf) > maxScratchCap {
		d.decodedBuf = nil
	} else {
		d.decodedBuf = d.decodedBuf[:0]
	}
	if cap(d.numBuf) > maxScratchCap {
		d.numBuf = nil
	} else {
		d.numBuf = d.numBuf[:0]
	}
	if d.compacted.Cap() > maxScratchCap {
		d.compacted = bytes.Buffer{}
	} else {
		d.compacted.Reset()
	}
	decoderPool.Put(d)
}

func acquireValueReader(r io.Reader) *valueReader {
	v := valueReaderPool.Get().(*valueReader)
	v.scanner.Reset(r)
	v.Reset()
	return v
}

func releaseValueReader(v *valueReader) {
	if v == nil {
		return
	}
	v.scanner.Reset(nil)
	v.Reset()
	valueReaderPool.Put(v)
}
