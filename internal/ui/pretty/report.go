package pretty

import "fmt"

// FormatBullet renders one list item as "  - text". Only the marker is
// styled so the item text is written exactly as given.
func (s *Styles) FormatBullet(text string) string {
	return "  " + s.Bullet.Render("-") + " " + text
}

// FormatOverflow renders the line that replaces items beyond a display cap.
func (s *Styles) FormatOverflow(hidden int) string {
	return "  " + s.Dim.Render(fmt.Sprintf("... and %d more errors", hidden))
}

// FormatLink renders label followed by url styled as a link.
func (s *Styles) FormatLink(label, url string) string {
	return label + s.Link.Render(url)
}
