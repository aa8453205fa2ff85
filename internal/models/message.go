package models

// MessageResponse is a plain confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// example: User deleted successfully
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: User not found
	Detail string `json:"detail"`
}

// RootResponse is the static service metadata returned by GET /
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}
