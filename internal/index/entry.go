package index

// Entry is the catalog record of one built post.
type Entry struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	URL         string `json:"url"`
	Description string `json:"description"`
	ContentHash string `json:"content_hash"`
	RenderHash  string `json:"render_hash"`
}

// Diff compares a rebuilt catalog with the previous one, by slug.
type Diff struct {
	Added     []string
	Changed   []string
	Removed   []string
	Unchanged []string
}

func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Changed) == 0 && len(d.Removed) == 0
}
