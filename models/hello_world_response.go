package models

// HelloWorldResponse is the JSON returned by GET /api/HelloWorld
type HelloWorldResponse struct {
	Message string `json:"message"`
}
