package censys

import "github.com/andyle182810/censys/pagination"

// Result returns the "result" object, or nil when absent.
func (d Document) Result() map[string]any {
	result, _ := d["result"].(map[string]any)

	return result
}

// Links returns the cursors under result.links of a search response.
func (d Document) Links() pagination.Links {
	links, _ := d.Result()["links"].(map[string]any)

	return pagination.FromMap(links)
}

// Buckets returns result.buckets of an aggregate response.
func (d Document) Buckets() []Bucket {
	raw, _ := d.Result()["buckets"].([]any)

	buckets := make([]Bucket, 0, len(raw))

	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		count, _ := entry["count"].(float64)

		buckets = append(buckets, Bucket{
			Key:   entry["key"],
			Count: int64(count),
		})
	}

	return buckets
}

// Bucket is one value/count pair of an aggregation.
type Bucket struct {
	Key   any
	Count int64
}
