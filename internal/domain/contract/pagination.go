package contract

// Page is an offset/limit window over an ordered listing.
type Page struct {
	Offset int
	Limit  int
}
