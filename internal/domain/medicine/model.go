package medicine

// Medicine maps to the medicines table. Stock rows carry no business
// identifier; two rows may share a name with independent quantities.
type Medicine struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`
	Expiry   string  `db:"expiry"`
}
