package configs

import "errors"

// First returns the first value at path, or the zero value if absent. Other errors panic.
func First[T any](loader Loader, path string) T {
	value, _ := Lookup[T](loader, path)
	return value
}

// Lookup is First that also reports whether the value is present, so an explicit zero can be told apart.
func Lookup[T any](loader Loader, path string) (value T, ok bool) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, false
		}
		panic(err)
	}
	return value, true
}
