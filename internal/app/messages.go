package app

// ReloadMsg signals that the watched diff source changed on disk.
type ReloadMsg struct {
	Path string
}

// ContentMsg carries freshly loaded diff text into the model.
type ContentMsg struct {
	Text string
	Err  error
}
