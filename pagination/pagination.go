package pagination

// Links holds the cursors a search response points to. An empty cursor means
// there is no such page.
type Links struct {
	Next string `json:"next"`
	Prev string `json:"prev"`
}

func (l Links) HasNext() bool {
	return l.Next != ""
}

func (l Links) HasPrev() bool {
	return l.Prev != ""
}

// FromMap reads "next" and "prev" from a decoded links object. Missing or
// non-string members are treated as empty.
func FromMap(links map[string]any) Links {
	next, _ := links["next"].(string)
	prev, _ := links["prev"].(string)

	return Links{
		Next: next,
		Prev: prev,
	}
}
