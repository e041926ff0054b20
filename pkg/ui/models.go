package ui

type (
	PagePaste struct {
		ID      string
		Content string
	}
	PageError struct {
		Message string
	}
)
