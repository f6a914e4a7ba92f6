package employee

import "time"

// Employee represents an employee record.
type Employee struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Age       *int      `json:"age"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Fields carries the mutable columns of an employee. Address and Age are
// optional and persist as NULL when nil.
type Fields struct {
	Name    string
	Address *string
	Age     *int
	Role    string
}
