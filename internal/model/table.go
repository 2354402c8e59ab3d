package model

// Table identifies one of the two resource tables. It is a closed set:
// routes are registered only for the constants below, so the table name
// that reaches SQL is always one of these fixed values and never raw
// request input.
type Table string

const (
	TableProducts Table = "products"
	TableShoes    Table = "shoes"
)

// Tables lists every resource table, in route-registration order.
var Tables = []Table{TableProducts, TableShoes}

func (t Table) String() string {
	return string(t)
}
