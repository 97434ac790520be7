package utils

func StringPtr(s string) *string {
	return &s
}

// PtrString dereferences s, returning "" for nil.
func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
