package pointer

func FromAny[T any](v T) *T {
	return &v
}

func ToInt(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}
