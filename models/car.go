package models

// Car is the vehicle record exposed by the /main endpoints.
type Car struct {
	// ID is generated by the database on insert and never changes afterwards.
	ID int64 `json:"id"`

	// Make is the manufacturer (e.g. "Toyota").
	Make string `json:"make"`

	// Model is the model name (e.g. "Corolla").
	Model string `json:"model"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "cars"
}

// CarUpdate is a partial update of a [Car].
// Only non-nil fields will be updated.
type CarUpdate struct {
	// ID is the identifier of the record to update. It is taken from the
	// request path, never from the body.
	ID int64 `json:"-"`

	// Make is the new manufacturer. If nil, the field will not be updated.
	Make *string `json:"make,omitempty"`

	// Model is the new model name. If nil, the field will not be updated.
	Model *string `json:"model,omitempty"`
}

// IsEmpty reports whether the update carries no field changes.
func (u CarUpdate) IsEmpty() bool {
	return u.Make == nil && u.Model == nil
}

// Apply copies the non-nil fields of u onto car and returns the result.
// The car ID is left untouched.
func (u CarUpdate) Apply(car Car) Car {
	if u.Make != nil {
		car.Make = *u.Make
	}
	if u.Model != nil {
		car.Model = *u.Model
	}
	return car
}
