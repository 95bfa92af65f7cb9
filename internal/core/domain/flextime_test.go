package domain

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseFlexTime(t *testing.T) {
	cases := []string{
		"2026-03-15T18:30:00Z",
		"2026-03-15T18:30:00-05:00",
		"2026-03-15T18:30:00.123456",
		"2026-03-15T18:30:00",
	}
	for _, s := range cases {
		ft, err := ParseFlexTime(s)
		if err != nil {
			t.Errorf("ParseFlexTime(%q) returned error: %v", s, err)
			continue
		}
		if ft.Year() != 2026 || ft.Month() != time.March || ft.Day() != 15 {
			t.Errorf("ParseFlexTime(%q) = %v, wrong date", s, ft.Time)
		}
	}

	if _, err := ParseFlexTime("not-a-timestamp"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestFlexTime_UnmarshalBSONValue_DateTime(t *testing.T) {
	instant := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	typ, data, err := bson.MarshalValue(instant)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var ft FlexTime
	if err := ft.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ft.Time.Equal(instant) {
		t.Errorf("got %v, want %v", ft.Time, instant)
	}
}

func TestFlexTime_UnmarshalBSONValue_ISOString(t *testing.T) {
	typ, data, err := bson.MarshalValue("2026-03-15T18:30:00Z")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var ft FlexTime
	if err := ft.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	if !ft.Time.Equal(want) {
		t.Errorf("got %v, want %v", ft.Time, want)
	}
}

func TestFlexTime_BothEncodingsNormalizeToSameDay(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// 2026-03-16 01:30 UTC is still 2026-03-15 in Bogota (UTC-5).
	native := NewFlexTime(time.Date(2026, 3, 16, 1, 30, 0, 0, time.UTC))
	iso, err := ParseFlexTime("2026-03-16T01:30:00Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, ft := range []FlexTime{native, iso} {
		y, m, d := ft.In(bogota).Date()
		if y != 2026 || m != time.March || d != 15 {
			t.Errorf("got %04d-%02d-%02d in Bogota, want 2026-03-15", y, m, d)
		}
	}
}
