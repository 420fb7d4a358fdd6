package model

import "errors"

// Short codes are 6 characters drawn from the base62 alphabet.
const (
	CodeLength   = 6
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var ErrInvalidCode = errors.New("invalid short code")

// LinkResponse is the payload of the get-link endpoint.
type LinkResponse struct {
	ShortLink string `json:"short-link"`
}
