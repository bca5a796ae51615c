package app

import "io"

// Option configures an App.
type Option func(*App)

// WithPicker replaces the interactive picker, typically for tests.
func WithPicker(pick Picker) Option {
	return func(a *App) { a.pick = pick }
}

// WithNameInput replaces the interactive name input, typically for tests.
func WithNameInput(input NameInput) Option {
	return func(a *App) { a.input = input }
}

// WithOutput redirects user-facing messages.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithStatePath enables apply-history recording into the database at path.
func WithStatePath(path string) Option {
	return func(a *App) { a.statePath = path }
}
