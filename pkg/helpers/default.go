package helpers

func DefaultInt(v *int, def int) int {
	if v == nil {
		return def
	}

	return *v
}

func DefaultString(v *string, def string) string {
	if v == nil {
		return def
	}

	return *v
}
