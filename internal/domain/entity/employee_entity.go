package entity

// Employee is a plain single-table record.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Position  string
}
