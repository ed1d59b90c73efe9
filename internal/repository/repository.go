package repository

// Page is an offset/limit pagination pair applied to list queries.
type Page struct {
	Skip  int
	Limit int
}
