package carousel

// VisibleSlice returns records[(page-1)*pageSize : page*pageSize], truncated
// to the records available. Out of range pages yield an empty slice.
func VisibleSlice[T any](records []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []T{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	// Cap the result so appends by callers never write into records.
	return records[start:end:end]
}
