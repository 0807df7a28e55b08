package v1

// Client is the record-store API client.
type Client struct {
	Transport *Transport
	Tables    *TableEndpoint
}

// NewClient initializes the API client
func NewClient(baseURL string, token string) *Client {
	t := NewTransport(baseURL, token)
	return &Client{
		Transport: t,
		Tables:    &TableEndpoint{transport: t},
	}
}
