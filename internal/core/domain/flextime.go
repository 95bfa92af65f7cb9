package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime is a timestamp that tolerates the two encodings found in the
// historical order documents: native BSON datetimes and ISO-8601 strings
// written by older clients. Both decode to the same instant, so revenue
// attribution compares dates on a single normalized representation.
type FlexTime struct {
	time.Time
}

func NewFlexTime(t time.Time) FlexTime { return FlexTime{Time: t} }

// flexLayouts are tried in order. Offset-less strings are taken as UTC.
var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFlexTime parses an ISO-8601 timestamp with or without sub-second
// precision or a zone offset.
func ParseFlexTime(s string) (FlexTime, error) {
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FlexTime{Time: t}, nil
		}
	}
	return FlexTime{}, fmt.Errorf("flextime: unrecognised timestamp %q", s)
}

// MarshalBSONValue always encodes as a native BSON datetime.
func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

// UnmarshalBSONValue accepts datetime, string, and null values.
func (t *FlexTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.DateTime:
		t.Time = raw.Time()
	case bsontype.String:
		parsed, err := ParseFlexTime(raw.StringValue())
		if err != nil {
			return err
		}
		t.Time = parsed.Time
	case bsontype.Null:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("flextime: cannot decode BSON type %s", bt)
	}
	return nil
}
