package library

// UnknownCategory is how books without a category are grouped at report
// time. Creation applies DefaultCategory instead, so this only shows up in
// documents written by other tools; the divergence is historical behavior
// and kept as-is.
const UnknownCategory = "Unknown"

// Reports aggregates the books collection.
type Reports struct {
	store *Store
}

// NewReports returns a report generator over the given store.
func NewReports(store *Store) *Reports { return &Reports{store: store} }

// CountByCategory groups all books by category and returns one row per
// category, in first-seen order.
func (r *Reports) CountByCategory() ([]CategoryCount, error) {
	doc, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var counts []CategoryCount
	for _, book := range doc.Books {
		cat := book.Category
		if cat == "" {
			cat = UnknownCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(counts)
			index[cat] = i
			counts = append(counts, CategoryCount{Category: cat})
		}
		counts[i].Count++
	}
	return counts, nil
}
