package api

import (
	"encoding/json"
	"fmt"
	"subsidiaries-cli/internal/config"

	"github.com/go-resty/resty/v2"
)

const SubsidiariesPath = "/tools/subsidiaries"

type Client struct {
	restyClient *resty.Client
}

func NewClient() *Client {
	client := resty.New()
	client.SetBaseURL(config.GetEndpointURL())
	return &Client{restyClient: client}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	return &Client{restyClient: client}
}

// GetSubsidiaries fetches the subsidiaries of a parent company. It returns an
// error on transport failure, non-2xx status, malformed JSON, or an envelope
// whose status flag is not "success".
func (c *Client) GetSubsidiaries(parentName string) (*Envelope, error) {
	resp, err := c.restyClient.R().
		SetQueryParam("main_parent_name", parentName).
		Get(SubsidiariesPath)

	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("API error: %s", resp.Status())
	}

	var envelope Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	if envelope.Status != "success" {
		return nil, fmt.Errorf("API returned status %q", envelope.Status)
	}

	return &envelope, nil
}
