// Package json encode and decode json by json-iterator,
// Standardize turns json with comments and trailing commas into standard json.
package json

import (
	"github.com/Laisky/errors/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/tailscale/hujson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// MarshalIndent marshal v to bytes with indent
	MarshalIndent = json.MarshalIndent
	// Unmarshal unmarshal standard json
	Unmarshal = json.Unmarshal
)

// Standardize strip comments and trailing commas from data
//
// data will be modified in place.
func Standardize(data []byte) ([]byte, error) {
	ast, err := hujson.Parse(data)
	if err != nil {
		return data, errors.Wrap(err, "parse hujson")
	}

	ast.Standardize()
	return ast.Pack(), nil
}
