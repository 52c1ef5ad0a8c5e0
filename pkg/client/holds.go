package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"barkeep/pkg/model"
)

type HoldsClient struct {
	httpClient *HttpClient
}

func NewHoldsClient(baseURL string) *HoldsClient {
	return &HoldsClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *HoldsClient) Hold(ctx context.Context, body any, bearer string) (*Response, error) {
	return c.httpClient.POSTWithHeaders(ctx, "/api/v1/holds", body, map[string]string{
		"Authorization": bearer,
	})
}

func (c *HoldsClient) List(ctx context.Context, barID, date, clock string) (*Response, error) {
	q := url.Values{}
	q.Set("bar_id", barID)
	q.Set("date", date)
	q.Set("clock", clock)
	return c.httpClient.GET(ctx, "/api/v1/holds?"+q.Encode())
}

func (c *HoldsClient) DecodeHoldResult(resp *Response) (*model.HoldResult, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode hold wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var result model.HoldResult
	if err := json.Unmarshal(wrapper.Data, &result); err != nil {
		return nil, fmt.Errorf("could not decode hold json:\n%+v\n%s", resp.ToString(), err)
	}

	return &result, nil
}

func (c *HoldsClient) DecodeStatuses(resp *Response) ([]model.TableSlotStatus, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode hold list wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var statuses []model.TableSlotStatus
	if err := json.Unmarshal(wrapper.Data, &statuses); err != nil {
		return nil, fmt.Errorf("could not decode hold list json:\n%+v\n%s", resp.ToString(), err)
	}

	return statuses, nil
}
