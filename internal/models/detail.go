package models

import (
	"encoding/json"
	"fmt"
)

// Detail is a "full" catalog record passed through mostly untouched.
// Only image_url is normalized by the proxy.
type Detail map[string]any

// MalID returns the record identifier, or 0 when it is missing.
func (d Detail) MalID() int {
	switch v := d["mal_id"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	}
	return 0
}

// ImageURL returns the normalized image URL.
func (d Detail) ImageURL() string {
	s, _ := d["image_url"].(string)
	return s
}

// decodeInto re-encodes the generic record into a typed view-model.
func (d Detail) decodeInto(target any) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode detail: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode detail: %w", err)
	}
	return nil
}

// AnimeDetail converts the generic record into the anime view-model.
func (d Detail) AnimeDetail() (*AnimeDetail, error) {
	var a AnimeDetail
	if err := d.decodeInto(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CharacterDetail converts the generic record into the character view-model.
func (d Detail) CharacterDetail() (*CharacterDetail, error) {
	var c CharacterDetail
	if err := d.decodeInto(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
