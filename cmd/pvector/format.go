package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forestrie/go-pvector/pvector"
	"github.com/goccy/go-json"
)

const (
	formatCBOR = "cbor"
	formatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown vector format")

// formatFor returns the explicit format if given, otherwise the one implied
// by the file extension. Anything other than .json is read as cbor.
func formatFor(explicit, path string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return formatJSON
	}
	return formatCBOR
}

func encodeVector(format string, v pvector.Vector[int64]) ([]byte, error) {
	switch format {
	case formatCBOR:
		codec, err := pvector.NewCBORCodec()
		if err != nil {
			return nil, err
		}
		return pvector.EncodeVector(codec, v)
	case formatJSON:
		return json.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func decodeVector(format string, data []byte) (pvector.Vector[int64], error) {
	var v pvector.Vector[int64]
	switch format {
	case formatCBOR:
		codec, err := pvector.NewCBORCodec()
		if err != nil {
			return v, err
		}
		return pvector.DecodeVector[int64](codec, data)
	case formatJSON:
		err := json.Unmarshal(data, &v)
		return v, err
	}
	return v, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
