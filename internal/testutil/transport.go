package testutil

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// RecordedRequest is a request captured by FakeTransport, with its body already read.
type RecordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// FakeResponse is a canned reply. A non-nil Err makes the round trip fail instead.
type FakeResponse struct {
	Status      int
	Body        string
	ContentType string
	Err         error
}

// FakeTransport is an http.RoundTripper that records requests and replies from a script.
// Responses are consumed in order; the last one repeats once the script runs out.
type FakeTransport struct {
	mu        sync.Mutex
	responses []FakeResponse
	Requests  []RecordedRequest
}

// NewFakeTransport creates a transport that replies with responses in order.
func NewFakeTransport(responses ...FakeResponse) *FakeTransport {
	return &FakeTransport{responses: responses}
}

// RoundTrip implements http.RoundTripper.
func (f *FakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var body []byte

	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}

		_ = req.Body.Close()
		body = data
	}

	f.Requests = append(f.Requests, RecordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   string(body),
	})

	if len(f.responses) == 0 {
		return nil, fmt.Errorf("fake transport: no response configured for %s %s", req.Method, req.URL)
	}

	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}

	return &http.Response{
		StatusCode: resp.Status,
		Status:     fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status)),
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(bytes.NewBufferString(resp.Body)),
		Request:    req,
	}, nil
}

// Calls returns how many requests were made.
func (f *FakeTransport) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.Requests)
}

// LastRequest returns the most recent request, or the zero value when none was made.
func (f *FakeTransport) LastRequest() RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Requests) == 0 {
		return RecordedRequest{}
	}

	return f.Requests[len(f.Requests)-1]
}
