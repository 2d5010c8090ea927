//go:build assertions_disabled

package assert

// True is a no-op in builds with assertions disabled.
func True(value bool, args ...any) {
}

// False is a no-op in builds with assertions disabled.
func False(value bool, args ...any) {
}

// Nil is a no-op in builds with assertions disabled.
func Nil(value any, args ...any) {
}

// NotNil is a no-op in builds with assertions disabled.
func NotNil(value any, args ...any) {
}

// NonEmptySlice is a no-op in builds with assertions disabled.
func NonEmptySlice[T any](slice []T, args ...any) {
}
