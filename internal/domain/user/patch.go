package user

// Column names of the users table that a patch may touch.
const (
	ColumnName  = "name"
	ColumnEmail = "email"
)

// Patch is a partial update. A nil field is left untouched.
type Patch struct {
	Name  *string
	Email *string
}

// Normalize treats empty strings as absent fields.
func (p Patch) Normalize() Patch {
	if p.Name != nil && *p.Name == "" {
		p.Name = nil
	}
	if p.Email != nil && *p.Email == "" {
		p.Email = nil
	}
	return p
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}

// Assignment is one column = value pair of an UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// Plan merges p into prior and returns the merged record together with the
// assignments needed to persist it. Assignments come in a fixed column order
// and only for supplied fields.
func Plan(prior User, p Patch) (User, []Assignment) {
	merged := prior
	var set []Assignment

	if p.Name != nil {
		merged.Name = *p.Name
		set = append(set, Assignment{Column: ColumnName, Value: *p.Name})
	}
	if p.Email != nil {
		merged.Email = *p.Email
		set = append(set, Assignment{Column: ColumnEmail, Value: *p.Email})
	}

	return merged, set
}
