package action

// Parameter extraction for JSON-decoded proposals, where numbers arrive as
// float64 and lists as []any.

func stringParam(ac *ActionContext, key string) (string, bool) {
	v, ok := ac.param(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func intParam(ac *ActionContext, key string) (int, bool) {
	v, ok := ac.param(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func intParamDefault(ac *ActionContext, key string, def int) int {
	if n, ok := intParam(ac, key); ok {
		return n
	}
	return def
}

func stringListParam(ac *ActionContext, key string) []string {
	v, ok := ac.param(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func costParam(ac *ActionContext, key string) map[string]int {
	v, ok := ac.param(key)
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case map[string]int:
		out := make(map[string]int, len(m))
		for k, n := range m {
			out[k] = n
		}
		return out
	case map[string]any:
		out := make(map[string]int, len(m))
		for k, raw := range m {
			switch n := raw.(type) {
			case int:
				out[k] = n
			case float64:
				out[k] = int(n)
			}
		}
		return out
	default:
		return nil
	}
}
