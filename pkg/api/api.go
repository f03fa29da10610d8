// Package api содержит wire-типы HTTP API.
//
// Все ответы сервера заворачиваются в Envelope:
//
//	{"success": true, "data": {...}}
//	{"success": false, "message": "..."}
package api

// Envelope единый формат ответа API
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
