package core

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

const ValueIncrementedEventType = "ValueIncremented"

var ErrUnmarshalValueIncremented = errors.New("unmarshalling ValueIncremented from json failed")

// ValueIncremented is raised whenever a value was incremented by Value, which may be negative.
type ValueIncremented struct {
	Value int
}

func BuildValueIncremented(value int) ValueIncremented {
	return ValueIncremented{Value: value}
}

func ValueIncrementedFromJSON(payloadJSON []byte) (ValueIncremented, error) {
	payload := new(ValueIncremented)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return ValueIncremented{}, errors.Join(ErrUnmarshalValueIncremented, err)
	}

	return BuildValueIncremented(payload.Value), nil
}

func (e ValueIncremented) EventType() string {
	return ValueIncrementedEventType
}

func (e ValueIncremented) PayloadToJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(e)
}
