package types

// QueryResult contains compiled SQL and the parameters bound while compiling it.
type QueryResult struct {
	Params *Params
	SQL    string
}
