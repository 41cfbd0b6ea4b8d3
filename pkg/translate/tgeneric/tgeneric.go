package tgeneric

func MassConvert[T any, O any](items []T, convFunc func(T) O) []O {
	arr := make([]O, len(items))
	for i, v := range items {
		arr[i] = convFunc(v)
	}
	return arr
}
