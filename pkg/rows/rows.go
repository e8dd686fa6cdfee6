package rows

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Row is one record of a uniform-shape result set, as a data layer hands it
// over: column name to scalar value, nil for missing. Values must be
// comparable scalars (numbers, strings, bools, time.Time).
type Row map[string]any

// UniqueColumnValues returns, per column, the ascending sorted distinct
// non-nil values observed across all rows. The column set is taken from the
// first row; any row with a different key set fails with *ShapeError. An
// empty input yields an empty map.
func UniqueColumnValues(rs []Row) (map[string][]any, error) {
	if len(rs) == 0 {
		return map[string][]any{}, nil
	}

	keys := make([]string, 0, len(rs[0]))
	for k := range rs[0] {
		keys = append(keys, k)
	}

	seen := make(map[string]map[any]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = make(map[any]struct{})
	}

	for i, r := range rs {
		if err := checkShape(r, rs[0], i); err != nil {
			return nil, err
		}
		for _, k := range keys {
			if v := r[k]; v != nil {
				seen[k][v] = struct{}{}
			}
		}
	}

	out := make(map[string][]any, len(keys))
	for _, k := range keys {
		values := make([]any, 0, len(seen[k]))
		for v := range seen[k] {
			values = append(values, v)
		}
		sort.Slice(values, func(i, j int) bool {
			return compareValues(values[i], values[j]) < 0
		})
		out[k] = values
	}
	return out, nil
}

// UniqueColumnStrings is UniqueColumnValues with every value rendered
// through fmt.Sprint, the shape Select option lists are built from.
func UniqueColumnStrings(rs []Row) (map[string][]string, error) {
	values, err := UniqueColumnValues(rs)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(values))
	for k, vs := range values {
		ss := make([]string, len(vs))
		for i, v := range vs {
			ss[i] = fmt.Sprint(v)
		}
		out[k] = ss
	}
	return out, nil
}

func checkShape(r, first Row, index int) error {
	if len(r) != len(first) {
		return &ShapeError{Row: index, Reason: "key set differs from first row"}
	}
	for k := range first {
		if _, ok := r[k]; !ok {
			return &ShapeError{Row: index, Reason: fmt.Sprintf("missing key %q", k)}
		}
	}
	return nil
}

// compareValues orders two column values by their natural ordering. Numeric
// kinds compare as numbers regardless of width; otherwise like types compare
// directly and unlike types fall back to their string form so the sort stays
// total.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case !av && bv:
				return -1
			case av && !bv:
				return 1
			}
			return 0
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
