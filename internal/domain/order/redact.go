package order

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
)

// Codec reversibly encodes sensitive field values for transit. It is a
// policy seam, not real encryption: callers that need confidentiality plug
// in a stronger implementation.
type Codec interface {
	Encode(value string) string
	Decode(value string) (string, error)
}

// Base64Codec is the default transit encoding. Encoded values carry a marker
// prefix so downstream consumers can tell redacted fields apart.
type Base64Codec struct{}

const encodedPrefix = "enc:"

// Encode wraps the value in url-safe base64 with the marker prefix.
func (Base64Codec) Encode(value string) string {
	return encodedPrefix + base64.RawURLEncoding.EncodeToString([]byte(value))
}

// Decode reverses Encode.
func (Base64Codec) Decode(value string) (string, error) {
	raw, ok := strings.CutPrefix(value, encodedPrefix)
	if !ok {
		return "", fmt.Errorf("value is not an encoded field")
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("decode field: %w", err)
	}
	return string(decoded), nil
}

// Redact returns a copy of the order with sensitive fields passed through
// the codec: party full name, national id, birth date, mobile number, each
// shipment address's city and postal code, and each product item's mac_id.
// The source order is never mutated, so a validated aggregate stays reusable
// and cannot be double-encoded by accident.
func Redact(o Order, c Codec) Order {
	out := o

	out.Party.FullName = encodeIfSet(c, o.Party.FullName)
	out.Party.NationalID = encodeIfSet(c, o.Party.NationalID)
	out.Party.BirthDate = encodeIfSet(c, o.Party.BirthDate)
	out.Party.ContactPoints.Mobile = encodeIfSet(c, o.Party.ContactPoints.Mobile)

	if len(o.ShipmentOrders) > 0 {
		out.ShipmentOrders = slices.Clone(o.ShipmentOrders)
		for i := range out.ShipmentOrders {
			addr := &out.ShipmentOrders[i].Address
			addr.City = encodeIfSet(c, addr.City)
			addr.PostalCode = encodeIfSet(c, addr.PostalCode)
		}
	}

	if len(o.ProductOrderItems) > 0 {
		out.ProductOrderItems = slices.Clone(o.ProductOrderItems)
		for i := range out.ProductOrderItems {
			item := &out.ProductOrderItems[i]
			item.Attributes.MacID = encodeIfSet(c, item.Attributes.MacID)
		}
	}

	return out
}

func encodeIfSet(c Codec, value string) string {
	if value == "" {
		return ""
	}
	return c.Encode(value)
}
