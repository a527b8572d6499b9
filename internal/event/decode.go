package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload
var ErrNilPayload = errors.New("event payload is nil")

// DecodePayload returns an event payload as T. Payloads published on the
// in-process bus already hold T (or *T). Payloads read back from the audit
// log arrive as raw JSON, and anything else is re-encoded through JSON.
func DecodePayload[T any](input any) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf(ErrMsgDecodePayload, out, ErrNilPayload)
		}
		return *v, nil
	case json.RawMessage:
		return decodeJSON[T](v)
	case []byte:
		return decodeJSON[T](v)
	case nil:
		return out, fmt.Errorf(ErrMsgDecodePayload, out, ErrNilPayload)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload, out, err)
	}
	return decodeJSON[T](data)
}

func decodeJSON[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload, out, err)
	}
	return out, nil
}
