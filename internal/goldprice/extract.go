package goldprice

import "encoding/json"

// extractor pulls a price out of one recognized payload shape.
type extractor func(payload any) (float64, bool)

// extractors are tried in order; the first match wins.
var extractors = []extractor{
	topLevelPrice,
	dataArrayPrice,
	bareArrayPrice,
}

// Extract finds a numeric price in a JSON body. Recognized shapes, in order:
// {"price": n}, {"data": [{"price": n}, ...]}, [{"price": n}, ...].
// Only JSON numbers qualify; a string-typed price does not match.
func Extract(body []byte) (float64, bool) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, false
	}
	for _, ex := range extractors {
		if v, ok := ex(payload); ok {
			return v, true
		}
	}
	return 0, false
}

func topLevelPrice(payload any) (float64, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := obj["price"].(float64)
	return v, ok
}

func dataArrayPrice(payload any) (float64, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	arr, ok := obj["data"].([]any)
	if !ok || len(arr) == 0 {
		return 0, false
	}
	first, ok := arr[0].(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := first["price"].(float64)
	return v, ok
}

func bareArrayPrice(payload any) (float64, bool) {
	arr, ok := payload.([]any)
	if !ok || len(arr) == 0 {
		return 0, false
	}
	first, ok := arr[0].(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := first["price"].(float64)
	return v, ok
}
