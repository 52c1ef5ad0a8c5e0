package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"barkeep/pkg/model"
)

type BarsClient struct {
	httpClient *HttpClient
}

func NewBarsClient(baseURL string) *BarsClient {
	return &BarsClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *BarsClient) GetByID(ctx context.Context, id string) (*Response, error) {
	path := "/api/v1/bars/id/" + url.PathEscape(id)
	return c.httpClient.GET(ctx, path)
}

func (c *BarsClient) GetTables(ctx context.Context, barID string) (*Response, error) {
	path := "/api/v1/bars/id/" + url.PathEscape(barID) + "/tables"
	return c.httpClient.GET(ctx, path)
}

func (c *BarsClient) GetDrinks(ctx context.Context, barID string) (*Response, error) {
	path := "/api/v1/bars/id/" + url.PathEscape(barID) + "/drinks"
	return c.httpClient.GET(ctx, path)
}

func (c *BarsClient) DecodeBar(resp *Response) (*model.Bar, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode bar wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var bar model.Bar
	if err := json.Unmarshal(wrapper.Data, &bar); err != nil {
		return nil, fmt.Errorf("could not decode bar json:\n%+v\n%s", resp.ToString(), err)
	}

	return &bar, nil
}

func (c *BarsClient) DecodeTables(resp *Response) ([]*model.Table, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode table list wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var tables []*model.Table
	if err := json.Unmarshal(wrapper.Data, &tables); err != nil {
		return nil, fmt.Errorf("could not decode table list json:\n%+v\n%s", resp.ToString(), err)
	}

	return tables, nil
}
