// FILE: internal/dto/notice_dto.go
package dto

// Notice is the websocket payload pushed to a client.
type Notice struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
