// Package dto defines data transfer objects for the property feature's HTTP transport layer.
package dto

// LocationReq is the nested location object of a listing request body.
type LocationReq struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
}

// PropertyReq represents the request body for creating or replacing a listing.
// All fields are required; Gin's binding tags reject incomplete payloads.
type PropertyReq struct {
	Title       string      `json:"title" binding:"required"`
	Type        string      `json:"type" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Price       float64     `json:"price" binding:"required"`
	Location    LocationReq `json:"location" binding:"required"`
	SquareFeet  int         `json:"squareFeet" binding:"required"`
	YearBuilt   int         `json:"yearBuilt" binding:"required"`
	Bedrooms    int         `json:"bedrooms" binding:"required"`
}
