package flows

import (
	"context"
	"fmt"

	checkout "barkeep/internal/checkout/core"
	"barkeep/pkg/client"
	"barkeep/pkg/model"
)

// CreateBooking turns a held slot into a booking. The hold is verified
// by refreshing it first: only the holder can refresh, so a conflict
// here means the slot belongs to someone else.
type CreateBooking struct{}

func (f *CreateBooking) Name() string {
	return "create_booking"
}

func (f *CreateBooking) Steps() []*checkout.Step {
	return []*checkout.Step{
		checkout.NewStep("resolve_slot", ResolveSlot),
		checkout.NewStep("verify_hold", RequestHold),
		checkout.NewStep("create_booking", createBooking),
	}
}

func createBooking(ctx *checkout.CheckoutContext) error {
	drinks, err := extractDrinks(ctx)
	if err != nil {
		return err
	}

	req := model.BookingRequest{
		BarID:              ctx.ProcessString(BAR_ID),
		BookingDate:        ctx.ProcessString(DATE),
		BookingClock:       ctx.ProcessString(CLOCK),
		TableIDs:           []string{ctx.ProcessString(TABLE_ID)},
		Drinks:             drinks,
		PaymentDestination: ctx.OptionalString("payment_destination"),
	}

	resp, err := ctx.Clients.Bookings.Create(context.Background(), req, ctx.Bearer)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("booking rejected: %s", client.GetErrorMessage(resp))
	}

	confirmation, err := ctx.Clients.Bookings.DecodeConfirmation(resp)
	if err != nil {
		return err
	}

	ctx.Output["booking"] = confirmation.Booking
	if confirmation.PaymentURL != "" {
		ctx.Output["payment_url"] = confirmation.PaymentURL
	}
	return nil
}

func extractDrinks(ctx *checkout.CheckoutContext) ([]model.DrinkRequest, error) {
	raw, ok := ctx.Input["drinks"]
	if !ok {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("drinks must be a list")
	}

	drinks := make([]model.DrinkRequest, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("each drink must be an object")
		}
		drinkID, _ := entry["drink_id"].(string)
		quantity, _ := entry["quantity"].(float64)
		if drinkID == "" || quantity < 1 {
			return nil, fmt.Errorf("each drink needs a drink_id and a positive quantity")
		}
		drinks = append(drinks, model.DrinkRequest{
			DrinkID:  drinkID,
			Quantity: int(quantity),
		})
	}
	return drinks, nil
}
