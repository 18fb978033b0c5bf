package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Response struct {
	Data []byte
}

// Transport handles low-level HTTP and the admin secret header.
type Transport struct {
	BaseURL       string
	AdminPassword string
	HTTPClient    *http.Client
}

func NewTransport(baseURL, adminPassword string) *Transport {
	return &Transport{
		BaseURL:       baseURL,
		AdminPassword: adminPassword,
		HTTPClient:    &http.Client{},
	}
}

func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) do(method, path string, data any, query map[string]string) (*Response, error) {
	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, t.buildURL(path, query), body)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.AdminPassword != "" {
		req.Header.Set("X-Admin-Password", t.AdminPassword)
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s failed with status code %d: %s", method, path, resp.StatusCode, string(raw))
	}
	return &Response{Data: raw}, nil
}

func (t *Transport) Get(path string, query map[string]string) (*Response, error) {
	return t.do(http.MethodGet, path, nil, query)
}

func (t *Transport) Post(path string, data any, query map[string]string) (*Response, error) {
	return t.do(http.MethodPost, path, data, query)
}

func (t *Transport) Put(path string, data any) (*Response, error) {
	return t.do(http.MethodPut, path, data, nil)
}

func (t *Transport) Delete(path string) (*Response, error) {
	return t.do(http.MethodDelete, path, nil, nil)
}
