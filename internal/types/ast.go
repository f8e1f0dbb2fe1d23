package types

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Sort describes one ORDER BY term. It is not part of the predicate tree.
type Sort struct {
	PropertyName string
	Ascending    bool
}

// Direction returns ASC or DESC for the sort.
func (s Sort) Direction() Direction {
	if s.Ascending {
		return ASC
	}
	return DESC
}
