package graph

// Аргументы GraphQL приходят как map[string]any; отсутствующий ключ и явный null
// одинаково означают «не передано».

func stringArg(args map[string]any, key string) string {
	if v := stringPtrArg(args, key); v != nil {
		return *v
	}
	return ""
}

func stringPtrArg(args map[string]any, key string) *string {
	v, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func boolArg(args map[string]any, key string) bool {
	if v := boolPtrArg(args, key); v != nil {
		return *v
	}
	return false
}

func boolPtrArg(args map[string]any, key string) *bool {
	v, ok := args[key].(bool)
	if !ok {
		return nil
	}
	return &v
}

func floatPtrArg(args map[string]any, key string) *float64 {
	var f float64
	switch v := args[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	return &f
}
