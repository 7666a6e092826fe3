/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"github.com/mitchellh/mapstructure"
)

// decodeFilter maps a raw filter object onto the typed Filter. Weak
// typing tolerates JSON numbers for limit/skip and a numeric id.
func decodeFilter(raw map[string]interface{}) (*Filter, error) {
	var f Filter
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	return &f, nil
}
