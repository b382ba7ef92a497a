package model

type PostFilters struct {
	AuthorID  *int64
	Published *bool
	Search    *string
	Limit     *int
	Offset    *int
}
