package models

// Example is the sample resource exposed by the read-only examples endpoint.
type Example struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// TableName returns the name of the database table
// associated with the Example model.
func (e Example) TableName() string {
	return "examples"
}
