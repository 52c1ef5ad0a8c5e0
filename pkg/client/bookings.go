package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"barkeep/pkg/model"
)

type BookingsClient struct {
	httpClient *HttpClient
}

func NewBookingsClient(baseURL string) *BookingsClient {
	return &BookingsClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *BookingsClient) Create(ctx context.Context, body any, bearer string) (*Response, error) {
	return c.httpClient.POSTWithHeaders(ctx, "/api/v1/bookings", body, map[string]string{
		"Authorization": bearer,
	})
}

func (c *BookingsClient) GetByID(ctx context.Context, id string) (*Response, error) {
	path := "/api/v1/bookings/id/" + url.PathEscape(id)
	return c.httpClient.GET(ctx, path)
}

func (c *BookingsClient) UpdateStatus(ctx context.Context, id string, body any, bearer string) (*Response, error) {
	path := "/api/v1/bookings/id/" + url.PathEscape(id) + "/status"
	return c.httpClient.request(ctx, "PATCH", path, body, map[string]string{
		"Authorization": bearer,
	})
}

func (c *BookingsClient) Cancel(ctx context.Context, id string, bearer string) (*Response, error) {
	path := "/api/v1/bookings/id/" + url.PathEscape(id) + "/cancel"
	return c.httpClient.POSTWithHeaders(ctx, path, nil, map[string]string{
		"Authorization": bearer,
	})
}

func (c *BookingsClient) DecodeConfirmation(resp *Response) (*model.BookingConfirmation, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode confirmation wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var confirmation model.BookingConfirmation
	if err := json.Unmarshal(wrapper.Data, &confirmation); err != nil {
		return nil, fmt.Errorf("could not decode confirmation json:\n%+v\n%s", resp.ToString(), err)
	}

	return &confirmation, nil
}

func (c *BookingsClient) DecodeBooking(resp *Response) (*model.Booking, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode booking wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var booking model.Booking
	if err := json.Unmarshal(wrapper.Data, &booking); err != nil {
		return nil, fmt.Errorf("could not decode booking json:\n%+v\n%s", resp.ToString(), err)
	}

	return &booking, nil
}
