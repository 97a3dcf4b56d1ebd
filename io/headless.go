package io

// Headless is a Console that suppresses output and never blocks for input.
type Headless struct{}

var _ Console = Headless{}

// Print discards the text.
func (Headless) Print(text string) error {
	return nil
}

// ReadLine returns an empty line immediately.
func (Headless) ReadLine(request Request) (string, error) {
	return "", nil
}
