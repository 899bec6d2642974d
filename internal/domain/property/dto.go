package property

// CreatePropertyRequest carries the full set of listing fields; all are
// required. Numeric fields are pointers so a legitimate zero (e.g. a
// free listing, a studio with 0 bedrooms) is distinguishable from an
// absent value.
type CreatePropertyRequest struct {
	Title       string   `form:"title" validate:"required,max=255"`
	Description string   `form:"description" validate:"required"`
	Price       *float64 `form:"price" validate:"required,gte=0"`
	Bedrooms    *int     `form:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *int     `form:"bathrooms" validate:"required,gte=0"`
	SquareMeter *int     `form:"square_meter" validate:"required,gte=0"`
	Address     string   `form:"address" validate:"required"`
	City        string   `form:"city" validate:"required"`
	State       string   `form:"state" validate:"required,len=2"`
	Zip         string   `form:"zip" validate:"required,len=5"`
	Type        string   `form:"type" validate:"required,oneof=house apartment villa"`
	Status      string   `form:"status" validate:"required,oneof=for_sale for_rent sold rented"`
}

// ToEntity builds a new Property owned by ownerID.
func (r *CreatePropertyRequest) ToEntity(ownerID int64) *Property {
	return &Property{
		UserID:      ownerID,
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Bedrooms:    *r.Bedrooms,
		Bathrooms:   *r.Bathrooms,
		SquareMeter: *r.SquareMeter,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Zip:         r.Zip,
		Type:        r.Type,
		Status:      r.Status,
	}
}

// UpdatePropertyRequest has partial-update semantics: only supplied
// fields overwrite existing ones, but a supplied field must satisfy the
// same constraints as on create. DeleteImages lists image ids to detach;
// it is filled from the form by the handler, not bound directly.
type UpdatePropertyRequest struct {
	Title       *string  `form:"title" validate:"omitempty,max=255"`
	Description *string  `form:"description" validate:"omitempty"`
	Price       *float64 `form:"price" validate:"omitempty,gte=0"`
	Bedrooms    *int     `form:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `form:"bathrooms" validate:"omitempty,gte=0"`
	SquareMeter *int     `form:"square_meter" validate:"omitempty,gte=0"`
	Address     *string  `form:"address" validate:"omitempty"`
	City        *string  `form:"city" validate:"omitempty"`
	State       *string  `form:"state" validate:"omitempty,len=2"`
	Zip         *string  `form:"zip" validate:"omitempty,len=5"`
	Type        *string  `form:"type" validate:"omitempty,oneof=house apartment villa"`
	Status      *string  `form:"status" validate:"omitempty,oneof=for_sale for_rent sold rented"`

	DeleteImages []int64 `form:"-"`
}

// ApplyTo overwrites only the fields present in the request. Empty
// string values are treated as absent, matching form submissions that
// send every input.
func (r *UpdatePropertyRequest) ApplyTo(p *Property) {
	if r.Title != nil && *r.Title != "" {
		p.Title = *r.Title
	}
	if r.Description != nil && *r.Description != "" {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Bedrooms != nil {
		p.Bedrooms = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		p.Bathrooms = *r.Bathrooms
	}
	if r.SquareMeter != nil {
		p.SquareMeter = *r.SquareMeter
	}
	if r.Address != nil && *r.Address != "" {
		p.Address = *r.Address
	}
	if r.City != nil && *r.City != "" {
		p.City = *r.City
	}
	if r.State != nil && *r.State != "" {
		p.State = *r.State
	}
	if r.Zip != nil && *r.Zip != "" {
		p.Zip = *r.Zip
	}
	if r.Type != nil && *r.Type != "" {
		p.Type = *r.Type
	}
	if r.Status != nil && *r.Status != "" {
		p.Status = *r.Status
	}
}
