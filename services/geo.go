package services

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// DecodeEWKB converts the hex-encoded EWKB geometry read back from the
// geography column into a plain "lon lat" pair. Unparseable input yields the
// empty string, which callers treat as "no coordinate".
func DecodeEWKB(stored string) string {
	raw, err := hex.DecodeString(stored)
	if err != nil {
		return ""
	}
	g, err := ewkb.Unmarshal(raw)
	if err != nil {
		return ""
	}
	text, err := wkt.Marshal(g)
	if err != nil {
		return ""
	}
	return ExtractCoordinates(text)
}

// ExtractCoordinates strips the POINT(...) wrapper, returning the text
// between the first matching parentheses.
func ExtractCoordinates(pointStr string) string {
	start := strings.Index(pointStr, "(")
	end := strings.Index(pointStr, ")")
	if start < 0 || end < start {
		return ""
	}
	return pointStr[start+1 : end]
}

// EncodePoint wraps a raw "lon lat" pair as a WKT point literal for storage.
// The numeric format is not validated here; a bad literal is rejected by the
// storage layer.
func EncodePoint(pair string) string {
	return fmt.Sprintf("POINT(%s)", pair)
}
