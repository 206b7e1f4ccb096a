/*
Package http implements the small HTTP/1.1 subset spoken by httpd.

It is written from scratch on top of the standard library and does not use
net/http. It includes:

  - A lenient request decoder that works on the bytes of a single read
  - A response encoder that always derives Content-Length from the body
  - An ordered Header type with case-insensitive, whole-name lookups
  - A one-shot Client used by tests and cmd/httpc

# Limits

  - One request per connection; no keep-alive
  - No chunked transfer encoding
  - Requests are read once into a fixed buffer (DefaultReadBufferSize);
    anything beyond it is silently truncated

# Usage

Decoding a request:

	req, err := http.ReadRequest(conn, http.DefaultReadBufferSize)
	if err != nil {
		return err
	}
	fmt.Println(req.Method, req.Target, req.UserAgent())

Encoding a response:

	resp := http.Text(http.StatusOK, "hello")
	resp.WriteTo(conn)
*/
package http
