package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Form defaults used when a stored profile lacks body details.
const (
	DefaultAge    = 8
	DefaultWeight = 25.0
	DefaultHeight = 120.0
)

// Details are the body attributes entered in the profile form. The bounds
// match the form's numeric inputs.
type Details struct {
	Gender Gender  `json:"gender" validate:"oneof=Boy Girl Other"`
	Age    int     `json:"age" validate:"min=1,max=17"`
	Weight float64 `json:"weight" validate:"min=10,max=120"`
	Height float64 `json:"height" validate:"min=70,max=200"`
}

// DefaultDetails returns the form's initial values.
func DefaultDetails() Details {
	return Details{Gender: GenderBoy, Age: DefaultAge, Weight: DefaultWeight, Height: DefaultHeight}
}

// Validate checks the struct tags and wraps failures in ErrInvalidDetails.
func (d Details) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDetails, err)
	}
	return nil
}

// WithDefaults fills zero fields from DefaultDetails.
func (d Details) WithDefaults() Details {
	def := DefaultDetails()
	if d.Gender == "" {
		d.Gender = def.Gender
	}
	if d.Age <= 0 {
		d.Age = def.Age
	}
	if d.Weight <= 0 {
		d.Weight = def.Weight
	}
	if d.Height <= 0 {
		d.Height = def.Height
	}
	return d
}

// Apply copies the details onto the profile.
func (p *Profile) Apply(d Details) {
	p.Gender = d.Gender
	p.Age = d.Age
	p.Weight = d.Weight
	p.Height = d.Height
}
