package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"barkeep/pkg/model"
)

type AvailabilityClient struct {
	httpClient *HttpClient
}

func NewAvailabilityClient(baseURL string) *AvailabilityClient {
	return &AvailabilityClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *AvailabilityClient) GetWindows(ctx context.Context, barID string) (*Response, error) {
	path := "/api/v1/bars/" + url.PathEscape(barID) + "/windows"
	return c.httpClient.GET(ctx, path)
}

func (c *AvailabilityClient) DecodeWindows(resp *Response) ([]*model.OperatingWindow, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode window list wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var windows []*model.OperatingWindow
	if err := json.Unmarshal(wrapper.Data, &windows); err != nil {
		return nil, fmt.Errorf("could not decode window list json:\n%+v\n%s", resp.ToString(), err)
	}

	return windows, nil
}
