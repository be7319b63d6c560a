package entities

// MinutesFormatMarkdown is the only output format produced
const MinutesFormatMarkdown = "markdown"

// Minutes is a generated Minutes-of-Meeting document
type Minutes struct {
	Format  string `json:"format"`
	Content string `json:"minutes"`
}

// NewMinutes wraps generated Markdown
func NewMinutes(content string) *Minutes {
	return &Minutes{
		Format:  MinutesFormatMarkdown,
		Content: content,
	}
}
