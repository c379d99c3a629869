package order

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/ordex/internal/domain/order"
)

// envelope is the document wire shape: one order under a single top-level key.
type envelope struct {
	Order *order.Order `json:"order"`
}

// decodeDocument parses a JSON.GET reply. With the "$" path the store wraps
// the document in a one-element array.
func decodeDocument(raw []byte) (*order.Order, error) {
	var envs []envelope
	if err := json.Unmarshal(raw, &envs); err != nil {
		// Root-path replies without an array wrapper.
		var env envelope
		if err2 := json.Unmarshal(raw, &env); err2 != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		return env.Order, nil
	}
	if len(envs) == 0 {
		return nil, nil
	}
	return envs[0].Order, nil
}

// decodeHit parses one search hit into a validated Order.
func decodeHit(fields map[string]string) (order.Order, error) {
	raw, ok := fields["$"]
	if !ok {
		return order.Order{}, fmt.Errorf("hit has no document payload")
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return order.Order{}, fmt.Errorf("unmarshal hit: %w", err)
	}
	if env.Order == nil {
		return order.Order{}, fmt.Errorf("order payload missing")
	}
	if err := env.Order.Validate(); err != nil {
		return order.Order{}, err
	}
	return *env.Order, nil
}
