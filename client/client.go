// Package client is a small Go SDK for the school server's HTTP API.
package client

// Client bundles the per-resource endpoints over one transport. The admin
// password may be empty for read-only use of the public endpoints.
type Client struct {
	Transport   *Transport
	Students    *StudentEndpoint
	Attendance  *AttendanceEndpoint
	Corrections *CorrectionEndpoint
}

func New(baseURL, adminPassword string) *Client {
	t := NewTransport(baseURL, adminPassword)
	return &Client{
		Transport:   t,
		Students:    &StudentEndpoint{transport: t},
		Attendance:  &AttendanceEndpoint{transport: t},
		Corrections: &CorrectionEndpoint{transport: t},
	}
}
