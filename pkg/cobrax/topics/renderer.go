package topics

// Renderer formats topic content for the terminal
type Renderer interface {
	// Render receives the raw content and the topic file extension
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
