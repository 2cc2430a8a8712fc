package v1alpha1

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
)

// request reads typed fields out of a Struct message and records every
// malformed field on a validation builder
type request struct {
	fields map[string]*structpb.Value
	vb     *errors.ValidationBuilder
}

func newRequest(req *structpb.Struct) *request {
	return &request{
		fields: req.GetFields(),
		vb:     errors.NewValidationBuilder(),
	}
}

func (r *request) err() error {
	return r.vb.Build()
}

func (r *request) str(key string) string {
	v, ok := r.fields[key]
	if !ok {
		return ""
	}
	switch v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return strings.TrimSpace(v.GetStringValue())
	case *structpb.Value_NullValue:
		return ""
	default:
		r.vb.Field(key, "must be a string")
		return ""
	}
}

func (r *request) requiredStr(key string) string {
	s := r.str(key)
	if s == "" {
		r.vb.RequiredField(key)
	}
	return s
}

func (r *request) number(key string) (float64, bool) {
	v, ok := r.fields[key]
	if !ok {
		return 0, false
	}
	switch v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return v.GetNumberValue(), true
	case *structpb.Value_StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetStringValue()), 64)
		if err != nil {
			r.vb.Field(key, "must be a number")
			return 0, false
		}
		return f, true
	case *structpb.Value_NullValue:
		return 0, false
	default:
		r.vb.Field(key, "must be a number")
		return 0, false
	}
}

func (r *request) integer(key string) int {
	f, ok := r.number(key)
	if !ok {
		return 0
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		r.vb.Field(key, "must be an integer")
		return 0
	}
	return int(f)
}

func (r *request) optionalNumber(key string) *float64 {
	f, ok := r.number(key)
	if !ok {
		return nil
	}
	return &f
}

// quality accepts a tier name or its number; absent means no quality bonus
func (r *request) quality(key string) destiny.Quality {
	v, ok := r.fields[key]
	if !ok {
		return 0
	}
	if name, isString := v.GetKind().(*structpb.Value_StringValue); isString {
		if strings.TrimSpace(name.StringValue) == "" {
			return 0
		}
		q, known := destiny.ParseQuality(name.StringValue)
		if !known {
			r.vb.Fieldf(key, "unknown quality tier %q", name.StringValue)
		}
		return q
	}
	return destiny.Quality(r.integer(key))
}

func (r *request) numberMap(key string) map[string]float64 {
	v, ok := r.fields[key]
	if !ok {
		return nil
	}
	st := v.GetStructValue()
	if st == nil {
		r.vb.Field(key, "must be an object")
		return nil
	}

	// Stale exports carry numeric strings and junk; coerce what parses and
	// drop the rest so the merge can clamp it.
	out := make(map[string]float64, len(st.GetFields()))
	for k, field := range st.GetFields() {
		switch kind := field.GetKind().(type) {
		case *structpb.Value_NumberValue:
			out[k] = kind.NumberValue
		case *structpb.Value_StringValue:
			n, err := strconv.ParseFloat(strings.TrimSpace(kind.StringValue), 64)
			if err != nil {
				continue
			}
			out[k] = n
		}
	}
	return out
}

func (r *request) list(key string) []*structpb.Struct {
	v, ok := r.fields[key]
	if !ok {
		return nil
	}
	lv := v.GetListValue()
	if lv == nil {
		r.vb.Field(key, "must be a list")
		return nil
	}

	out := make([]*structpb.Struct, 0, len(lv.GetValues()))
	for i, item := range lv.GetValues() {
		st := item.GetStructValue()
		if st == nil {
			r.vb.Fieldf(key, "element %d must be an object", i)
			continue
		}
		out = append(out, st)
	}
	return out
}

// toStruct encodes a JSON-tagged value as a Struct message
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
