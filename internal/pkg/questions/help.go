package questions

import "github.com/goccy/go-json"

type Link struct {
	Text         string `json:"text"`
	Href         string `json:"href"`
	OpenInNewTab bool   `json:"openInNewTab,omitempty"`
}

// HelpItem is one entry of the guidance shown next to a question.
type HelpItem struct {
	Links   []Link        `json:"links,omitempty"`
	Content ContentBlocks `json:"content,omitempty"`
}

func (h HelpItem) HasLinks() bool {
	return len(h.Links) > 0
}

func (h HelpItem) HasContent() bool {
	return len(h.Content) > 0
}

// MarshalJSON emits the derived flags next to the stored lists. They are
// ignored when decoding.
func (h HelpItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Links      []Link        `json:"links,omitempty"`
		Content    ContentBlocks `json:"content,omitempty"`
		HasLinks   bool          `json:"hasLinks"`
		HasContent bool          `json:"hasContent"`
	}{
		Links:      h.Links,
		Content:    h.Content,
		HasLinks:   h.HasLinks(),
		HasContent: h.HasContent(),
	})
}

type Sidebar struct {
	Heading string        `json:"heading,omitempty"`
	Body    ContentBlocks `json:"body,omitempty"`
	Links   []Link        `json:"links,omitempty"`
}
