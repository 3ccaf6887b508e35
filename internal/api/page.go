package api

import "encoding/json"

// Page is one page of a list response. The server returns either a bare
// JSON array or a pagination envelope {count, next, previous, results};
// both decode into Page, preferring results when the envelope is present.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			var items []T
			if err := json.Unmarshal(data, &items); err != nil {
				return err
			}
			*p = Page[T]{Count: len(items), Results: items}
			return nil
		}
		break
	}

	type envelope Page[T] // drop method set to avoid recursion
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	*p = Page[T](e)
	return nil
}
