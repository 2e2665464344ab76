// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// AddressReq is the nested address object of a signup request body.
type AddressReq struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// SignupReq represents the request body for the /api/users/signup endpoint.
// Field presence and shape are checked by the credential validator in the
// usecase layer so that each failure gets its own message, which is why the
// fields carry no binding tags.
type SignupReq struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	PhoneNumber string     `json:"phoneNumber"`
	Gender      string     `json:"gender"`
	DateOfBirth string     `json:"dateOfBirth"`
	Address     AddressReq `json:"address"`
}
