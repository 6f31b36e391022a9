package protocol

import (
	"encoding/json"
	"fmt"
)

// Messages are flat JSON objects tagged by a "type" field, so decoding is a
// two-pass affair: peek at the tag, then unmarshal the whole message into the
// matching struct.

type typeProbe struct {
	Type string `json:"type"`
}

func Encode(msg any) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("trying to encode nil message")
	}
	return json.Marshal(msg)
}

// DecodeType returns the "type" tag of a raw message.
func DecodeType(b []byte) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("trying to decode empty message")
	}
	var p typeProbe
	if err := json.Unmarshal(b, &p); err != nil {
		return "", err
	}
	if p.Type == "" {
		return "", fmt.Errorf("message has no type tag")
	}
	return p.Type, nil
}

func Decode[T any](b []byte) (T, error) {
	var out T
	err := json.Unmarshal(b, &out)
	return out, err
}
