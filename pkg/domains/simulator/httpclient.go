package simulator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Client wraps an *http.Client in the gateway. Synthetic NOT_FOUND and
// SERVER_ERROR become synthesized 404/500 responses with generic bodies;
// NETWORK_ERROR becomes a transport error with no response at all, like a
// dropped connection.
type Client struct {
	http *http.Client
	sim  *Simulator
}

func NewClient(httpClient *http.Client, sim *Simulator) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http: httpClient,
		sim:  sim,
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.DoWithOverride(req, nil)
}

func (c *Client) DoWithOverride(req *http.Request, override *Override) (*http.Response, error) {
	var resp *http.Response
	err := c.sim.Simulate(req.Context(), func() error {
		var opErr error
		resp, opErr = c.http.Do(req)
		return opErr
	}, override)
	if err == nil {
		return resp, nil
	}

	var synth *SyntheticError
	if errors.As(err, &synth) {
		switch synth.Kind {
		case NotFound:
			return syntheticResponse(req, http.StatusNotFound, `{"error":"Resource not found"}`), nil
		case ServerError:
			return syntheticResponse(req, http.StatusInternalServerError, `{"error":"Internal server error"}`), nil
		default:
			return nil, fmt.Errorf("network error")
		}
	}
	return nil, err
}

func syntheticResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
