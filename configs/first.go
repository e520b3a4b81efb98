package configs

import "errors"

// First returns the first definition of path across the loaded files,
// or the zero value if no file defines it. Malformed config is a
// startup failure and panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
