package inventory

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var errNotInteger = errors.New("valor no convertible a entero")

// toInt convierte v a entero: números (los flotantes se truncan), json.Number,
// booleanos y cadenas decimales. nil, mapas y slices fallan.
func toInt(v any) (int, error) {
	switch q := v.(type) {
	case nil:
		return 0, errNotInteger
	case string:
		// cast.ToIntE usa base 0 ("010" -> 8); aquí solo decimal.
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0, errNotInteger
		}
		return n, nil
	case json.Number:
		if n, err := q.Int64(); err == nil {
			return int(n), nil
		}
		f, err := q.Float64()
		if err != nil || !fitsInt(f) {
			return 0, errNotInteger
		}
		return int(f), nil
	case float32:
		if !fitsInt(float64(q)) {
			return 0, errNotInteger
		}
	case float64:
		if !fitsInt(q) {
			return 0, errNotInteger
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, errNotInteger
	}
	return n, nil
}

// numericQuantity acepta solo tipos numéricos con valor entero (10, 10.0); cadenas
// y booleanos no son cantidades válidas para una entrada.
func numericQuantity(v any) (int, bool) {
	switch q := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToIntE(q)
		return n, err == nil
	case float32, float64:
		f := cast.ToFloat64(q)
		if !fitsInt(f) || f != math.Trunc(f) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// fitsInt indica si la parte entera de f es representable como int.
// float64(math.MaxInt) redondea a 2^63, por eso el límite superior es exclusivo.
func fitsInt(f float64) bool {
	return !math.IsNaN(f) && f >= float64(math.MinInt) && f < float64(math.MaxInt)
}
