package lounge

// Merge deep-merges each source into dst, left to right, and returns dst.
// A nil dst is allocated.
//
// For every key of a source:
//   - a nil value is written only when dst lacks the key
//   - two plain objects merge recursively into dst's object
//   - any other plain object or []any is copied into dst, so dst never
//     shares a container with a source
//   - every other value replaces dst's value
//
// Slices replace, they are not merged by index. Nested objects already in
// dst are modified in place.
func Merge(dst map[string]any, srcs ...map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range srcs {
		mergeInto(dst, src)
	}
	return dst
}

func mergeInto(dst, src map[string]any) {
	for k, sv := range src {
		if sv == nil {
			if _, ok := dst[k]; !ok {
				dst[k] = nil
			}
			continue
		}

		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok && dm != nil {
				mergeInto(dm, sm)
				continue
			}
		}
		dst[k] = copyContainer(sv)
	}
}

// copyContainer copies plain objects and []any recursively. Other values
// are returned as they are.
func copyContainer(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		mergeInto(out, t)
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = copyContainer(elem)
		}
		return out
	default:
		return v
	}
}
