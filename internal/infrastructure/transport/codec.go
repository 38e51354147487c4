// Package transport carries the component protocol between the widget and
// its host: render snapshots in, component values and frame heights out.
package transport

import (
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

// Message types of the component protocol.
const (
	TypeRender            = "streamlit:render"
	TypeComponentReady    = "streamlit:componentReady"
	TypeSetComponentValue = "streamlit:setComponentValue"
	TypeSetFrameHeight    = "streamlit:setFrameHeight"

	// APIVersion is announced with the ready message.
	APIVersion = 1
)

// RenderEvent is one inbound render message.
type RenderEvent struct {
	Args map[string]interface{}
	// Disabled and Theme are the envelope-level values, nil when absent.
	Disabled *bool
	Theme    interface{}
}

// Merged returns the render arguments with the envelope-level theme and
// disabled flag applied over the same keys in Args.
func (e RenderEvent) Merged() map[string]interface{} {
	out := make(map[string]interface{}, len(e.Args)+2)
	for k, v := range e.Args {
		out[k] = v
	}
	if e.Disabled != nil {
		out[snapshot.KeyDisabled] = *e.Disabled
	}
	if e.Theme != nil {
		out[snapshot.KeyTheme] = e.Theme
	}
	return out
}

// Decode parses one inbound message. A JSON object with a "type" field is a
// protocol envelope; one without is taken as bare render arguments. ok is
// false for envelopes of any other type than render.
func Decode(data []byte) (event RenderEvent, ok bool, err error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return RenderEvent{}, false, apperrors.NewTransportError("decode", err)
	}
	if raw == nil {
		return RenderEvent{}, false, apperrors.NewTransportError("decode", fmt.Errorf("message is not an object"))
	}

	kind, hasType := raw["type"]
	if !hasType {
		return RenderEvent{Args: raw}, true, nil
	}
	if kind != TypeRender {
		return RenderEvent{}, false, nil
	}

	event = RenderEvent{Args: map[string]interface{}{}}
	if args, isMap := raw["args"].(map[string]interface{}); isMap {
		event.Args = args
	}
	if disabled, isBool := raw["disabled"].(bool); isBool {
		event.Disabled = &disabled
	}
	if theme, present := raw["theme"]; present && theme != nil {
		event.Theme = theme
	}
	return event, true, nil
}

// outbound is the wire form of every widget-originated message.
type outbound struct {
	IsStreamlitMessage bool        `json:"isStreamlitMessage"`
	Type               string      `json:"type"`
	APIVersion         int         `json:"apiVersion,omitempty"`
	Value              interface{} `json:"value,omitempty"`
	DataType           string      `json:"dataType,omitempty"`
	Height             *int        `json:"height,omitempty"`
}

func encodeReady() ([]byte, error) {
	return json.Marshal(outbound{IsStreamlitMessage: true, Type: TypeComponentReady, APIVersion: APIVersion})
}

func encodeValue(value interface{}) ([]byte, error) {
	return json.Marshal(outbound{IsStreamlitMessage: true, Type: TypeSetComponentValue, Value: value, DataType: "json"})
}

func encodeHeight(height int) ([]byte, error) {
	return json.Marshal(outbound{IsStreamlitMessage: true, Type: TypeSetFrameHeight, Height: &height})
}
