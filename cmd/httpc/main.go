// httpc sends a single request to an httpd instance and prints the
// response as it came off the wire.
//
// Usage:
//
//	httpc [-addr host:port] [-X method] [-H "Name: value"]... [-d body] target
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"httpd/pkg/http"
	"httpd/pkg/server"
)

// headerFlags collects repeated -H values.
type headerFlags []string

func (h *headerFlags) String() string { return strings.Join(*h, ", ") }

func (h *headerFlags) Set(v string) error {
	if _, _, ok := http.ParseHeaderLine(v); !ok {
		return fmt.Errorf("header must look like \"Name: value\": %q", v)
	}
	*h = append(*h, v)
	return nil
}

type options struct {
	addr    string
	method  string
	headers headerFlags
	data    string
	raw     bool
	timeout time.Duration
	target  string
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("httpc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.addr, "addr", server.DefaultAddr, "server address")
	fs.StringVar(&opts.method, "X", "", "request method (default GET, or POST with -d)")
	fs.Var(&opts.headers, "H", "extra header, repeatable")
	fs.StringVar(&opts.data, "d", "", "request body")
	fs.BoolVar(&opts.raw, "raw", false, "send the target argument verbatim, with \\r\\n escapes expanded")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Second, "exchange timeout")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one target, got %d", fs.NArg())
	}
	opts.target = fs.Arg(0)
	if opts.method == "" {
		opts.method = http.MethodGet
		if opts.data != "" {
			opts.method = http.MethodPost
		}
	}
	return opts, nil
}

func (o *options) request() *http.Request {
	var body []byte
	if o.data != "" {
		body = []byte(o.data)
	}
	req := http.NewRequest(o.method, o.target, body)
	for _, line := range o.headers {
		name, value, _ := http.ParseHeaderLine(line)
		req.Header.Add(name, value)
	}
	return req
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return 2
	}

	client := &http.Client{Addr: opts.addr, Timeout: opts.timeout}
	ctx := context.Background()

	var resp *http.Response
	if opts.raw {
		raw := strings.NewReplacer(`\r`, "\r", `\n`, "\n").Replace(opts.target)
		resp, err = client.DoRaw(ctx, []byte(raw))
	} else {
		resp, err = client.Do(ctx, opts.request())
	}
	if err != nil {
		fmt.Fprintf(stderr, "httpc: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s %d %s\n", resp.Proto, resp.StatusCode, resp.Reason)
	for _, f := range resp.Header {
		fmt.Fprintf(stdout, "%s: %s\n", f.Name, f.Value)
	}
	fmt.Fprintln(stdout)
	stdout.Write(resp.Body)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
