package http

import (
	"bufio"
	"context"
	"net"
	"time"
)

// DefaultClientTimeout bounds a single exchange made by the Client.
const DefaultClientTimeout = 30 * time.Second

// Client sends one request per connection and reads the response until
// the server closes, matching the server's request-then-close model.
type Client struct {
	Addr    string
	Timeout time.Duration
	Dialer  net.Dialer
}

// Do sends req and returns the decoded response. A Host header is added
// to the wire form when req has none; req itself is left untouched.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	out := *req
	out.Header = req.Header.Clone()
	if out.Header.Get(HeaderHost) == "" {
		out.Header.Set(HeaderHost, c.Addr)
	}
	return c.exchange(ctx, func(conn net.Conn) error {
		_, err := out.WriteTo(conn)
		return err
	})
}

// DoRaw writes raw bytes verbatim. It is meant for probing the decoder
// with requests the Request type cannot express.
func (c *Client) DoRaw(ctx context.Context, raw []byte) (*Response, error) {
	return c.exchange(ctx, func(conn net.Conn) error {
		_, err := conn.Write(raw)
		return err
	})
}

// Get sends a GET request for target.
func (c *Client) Get(ctx context.Context, target string) (*Response, error) {
	return c.Do(ctx, NewRequest(MethodGet, target, nil))
}

// Post sends a POST request with the given body.
func (c *Client) Post(ctx context.Context, target string, body []byte) (*Response, error) {
	return c.Do(ctx, NewRequest(MethodPost, target, body))
}

func (c *Client) exchange(ctx context.Context, send func(net.Conn) error) (*Response, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultClientTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := c.Dialer.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, err
		}
	}
	if err := send(conn); err != nil {
		return nil, err
	}
	return ReadResponse(bufio.NewReader(conn))
}
