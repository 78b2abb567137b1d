package abi

import (
	"strconv"
	"strings"
	"time"
)

const (
	blockTimestampEpochMs = 946684800000 // year-2000 epoch, in unix milliseconds
	blockTimestampSlotMs  = 500
)

const isoLayout = "2006-01-02T15:04:05"

func timePointSecCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "time_point_sec",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			t, err := time.Parse(isoLayout, ev.Str)
			if err != nil {
				return newErr(KindParseError, "time_point_sec %q: %v", ev.Str, err)
			}
			secs := t.Unix()
			if secs < 0 || secs > 1<<32-1 {
				return newErr(KindOutOfRange, "time_point_sec out of range")
			}
			buf := make([]byte, 4)
			putUintLE(buf, uint64(secs))
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(4)
			if err != nil {
				return err
			}
			secs := getUintLE(b, 4)
			t := time.Unix(int64(secs), 0).UTC()
			w.WriteString(t.Format(isoLayout) + ".000")
			return nil
		},
	}
}

// parseISOMillis parses an ISO-8601 timestamp with optional fractional
// seconds (up to 3 digits, used as milliseconds) and returns unix
// milliseconds.
func parseISOMillis(s string) (int64, error) {
	base, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		base, fracPart = s[:dot], s[dot+1:]
	}
	t, err := time.Parse(isoLayout, base)
	if err != nil {
		return 0, err
	}
	millis := t.Unix() * 1000
	if fracPart != "" {
		for len(fracPart) < 3 {
			fracPart += "0"
		}
		fracPart = fracPart[:3]
		v, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, err
		}
		millis += v
	}
	return millis, nil
}

func formatISOMillis(millis int64) string {
	secs := millis / 1000
	rem := millis % 1000
	if rem < 0 {
		rem += 1000
		secs--
	}
	t := time.Unix(secs, 0).UTC()
	return t.Format(isoLayout) + "." + padMillis(rem)
}

func padMillis(v int64) string {
	s := strconv.FormatInt(v, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func timePointCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "time_point",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			millis, err := parseISOMillis(ev.Str)
			if err != nil {
				return newErr(KindParseError, "time_point %q: %v", ev.Str, err)
			}
			micros := uint64(millis) * 1000
			buf := make([]byte, 8)
			putUintLE(buf, micros)
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(8)
			if err != nil {
				return err
			}
			micros := getUintLE(b, 8)
			w.WriteString(formatISOMillis(int64(micros / 1000)))
			return nil
		},
	}
}

func blockTimestampCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "block_timestamp_type",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			millis, err := parseISOMillis(ev.Str)
			if err != nil {
				return newErr(KindParseError, "block_timestamp_type %q: %v", ev.Str, err)
			}
			slot := (millis - blockTimestampEpochMs) / blockTimestampSlotMs
			if slot < 0 || slot > 1<<32-1 {
				return newErr(KindOutOfRange, "block_timestamp_type out of range")
			}
			buf := make([]byte, 4)
			putUintLE(buf, uint64(slot))
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(4)
			if err != nil {
				return err
			}
			slot := getUintLE(b, 4)
			millis := blockTimestampEpochMs + int64(slot)*blockTimestampSlotMs
			w.WriteString(formatISOMillis(millis))
			return nil
		},
	}
}
