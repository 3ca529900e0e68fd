package models

// Room is a bookable classroom. The catalog is seeded once and not
// mutated afterwards, so there is no updated-at bookkeeping here.
type Room struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
}
