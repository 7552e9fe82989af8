package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

type mockResult struct {
	Body       string
	StatusCode int
	Err        error
}

type mockTransport struct {
	mu                   sync.Mutex
	requestToResponseErr map[string]mockResult
	calls                map[string]int
}

func mockKey(method, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Sprintf("%s %s", method, rawURL)
	}
	return fmt.Sprintf("%s %s%s", method, u.Host, u.Path)
}

func (m *mockTransport) AddRequest(method string, rawURL string, statusCode int, body string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestToResponseErr[mockKey(method, rawURL)] = mockResult{Body: body, StatusCode: statusCode, Err: err}
}

// AddPage registers a 200 response body for a GET of url.
func (m *mockTransport) AddPage(rawURL string, body string) {
	m.AddRequest(http.MethodGet, rawURL, http.StatusOK, body, nil)
}

// Calls reports how many times a GET of url reached the transport, which is
// how tests count underlying fetches behind a cache.
func (m *mockTransport) Calls(rawURL string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[mockKey(http.MethodGet, rawURL)]
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	key := fmt.Sprintf("%s %s%s", req.Method, req.URL.Host, req.URL.Path)
	m.calls[key]++
	s, ok := m.requestToResponseErr[key]
	m.mu.Unlock()

	if !ok {
		s = mockResult{StatusCode: http.StatusOK}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &http.Response{
		Status:     http.StatusText(s.StatusCode),
		StatusCode: s.StatusCode,
		Body:       io.NopCloser(bytes.NewBufferString(s.Body)),
		Request:    req,
	}, nil
}

func NewHttpClientMock(target *http.Client) *mockTransport {
	mock := &mockTransport{
		requestToResponseErr: map[string]mockResult{},
		calls:                map[string]int{},
	}
	hc := http.Client{Transport: mock}
	*target = hc
	return mock
}
