package model

// Client is a registered member of the coworking space.  Clients are
// created once and never mutated or deleted.
//
// Fields:
//  ID        – primary key identifier.
//  FirstName – given name, non-blank.
//  LastName  – family name, non-blank.
type Client struct {
	ID        int64  `json:"id"`         // clients.id
	FirstName string `json:"first_name"` // clients.first_name
	LastName  string `json:"last_name"`  // clients.last_name
}
