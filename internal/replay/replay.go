// Package replay encodes a completed round as a compact binary envelope
// using google.golang.org/protobuf's structpb, wrapping the JSON event
// stream in a generic typed protobuf message rather than hand-maintained
// generated code (no .proto/protoc toolchain is available here).
package replay

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"fightboard/internal/combat"
)

// Envelope is the decoded form of a replay: the outcome plus every event
// emitted while executing the round, in sequence order.
type Envelope struct {
	RoundID     string
	RoundNumber int
	Winner      *combat.Side
	Draw        bool
	Events      []combat.Event
}

// Encode marshals an Envelope into protobuf wire bytes. Each combat.Event's
// JSON payload is round-tripped through structpb.Value so the whole
// envelope is one proto.Message, not a bag of opaque JSON strings.
func Encode(env Envelope) ([]byte, error) {
	eventStructs := make([]*structpb.Value, 0, len(env.Events))
	for _, e := range env.Events {
		v, err := eventToValue(e)
		if err != nil {
			return nil, fmt.Errorf("replay: encode event %d: %w", e.Sequence, err)
		}
		eventStructs = append(eventStructs, v)
	}

	fields := map[string]interface{}{
		"round_id":     env.RoundID,
		"round_number": float64(env.RoundNumber),
		"draw":         env.Draw,
	}
	if env.Winner != nil {
		fields["winner"] = string(*env.Winner)
	}
	root, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("replay: encode root: %w", err)
	}
	root.Fields["events"] = structpb.NewListValue(&structpb.ListValue{Values: eventStructs})

	return proto.Marshal(root)
}

// Decode reverses Encode.
func Decode(data []byte) (Envelope, error) {
	root := &structpb.Struct{}
	if err := proto.Unmarshal(data, root); err != nil {
		return Envelope{}, fmt.Errorf("replay: decode root: %w", err)
	}

	env := Envelope{
		RoundID:     root.Fields["round_id"].GetStringValue(),
		RoundNumber: int(root.Fields["round_number"].GetNumberValue()),
		Draw:        root.Fields["draw"].GetBoolValue(),
	}
	if w, ok := root.Fields["winner"]; ok && w.GetStringValue() != "" {
		side := combat.Side(w.GetStringValue())
		env.Winner = &side
	}

	eventsList := root.Fields["events"].GetListValue()
	if eventsList != nil {
		for _, v := range eventsList.Values {
			e, err := valueToEvent(v)
			if err != nil {
				return Envelope{}, fmt.Errorf("replay: decode event: %w", err)
			}
			env.Events = append(env.Events, e)
		}
	}

	return env, nil
}

func eventToValue(e combat.Event) (*structpb.Value, error) {
	var payload interface{}
	if len(e.Payload) > 0 {
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			return nil, err
		}
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		"version":   float64(e.Version),
		"type":      float64(e.Type),
		"type_name": e.Type.String(),
		"sequence":  float64(e.Sequence),
		"round":     float64(e.Round),
		"payload":   payload,
	})
	if err != nil {
		return nil, err
	}
	return structpb.NewStructValue(s), nil
}

func valueToEvent(v *structpb.Value) (combat.Event, error) {
	s := v.GetStructValue()
	if s == nil {
		return combat.Event{}, fmt.Errorf("expected struct value for event")
	}
	payload, err := s.Fields["payload"].MarshalJSON()
	if err != nil {
		return combat.Event{}, err
	}
	return combat.Event{
		Version:  uint8(s.Fields["version"].GetNumberValue()),
		Type:     combat.EventType(uint8(s.Fields["type"].GetNumberValue())),
		Sequence: uint64(s.Fields["sequence"].GetNumberValue()),
		Round:    int(s.Fields["round"].GetNumberValue()),
		Payload:  payload,
	}, nil
}
