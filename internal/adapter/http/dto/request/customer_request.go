package request

import "strings"

// CustomerRequest is the body of customer create and update calls. Absent
// fields are left untouched on update.
type CustomerRequest struct {
	FirstName *string `json:"firstName,omitempty" example:"Jean"`
	LastName  *string `json:"lastName,omitempty" example:"Dupont"`
	FullName  *string `json:"fullName,omitempty" example:"Jean Dupont"`
	Email     *string `json:"email,omitempty" example:"jean.dupont@example.com"`
	Phone     *string `json:"phone,omitempty" example:"+226 70 00 00 00"`
	IFU       *string `json:"ifu,omitempty" example:"00012345A"`
	Address   *string `json:"address,omitempty" example:"Avenue Kwame Nkrumah"`
	City      *string `json:"city,omitempty" example:"Ouagadougou"`
}

func (r CustomerRequest) ToFields() map[string]any {
	fields := map[string]any{}
	put := func(key string, v *string) {
		if v != nil {
			fields[key] = strings.TrimSpace(*v)
		}
	}
	put("firstName", r.FirstName)
	put("lastName", r.LastName)
	put("fullName", r.FullName)
	put("email", r.Email)
	put("phone", r.Phone)
	put("ifu", r.IFU)
	put("address", r.Address)
	put("city", r.City)
	return fields
}
