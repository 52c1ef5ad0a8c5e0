package flows

import (
	"context"
	"fmt"

	checkout "barkeep/internal/checkout/core"
	"barkeep/pkg/client"
	"barkeep/pkg/model"
)

// Process keys shared between steps.
const (
	BAR_ID   = "bar_id"
	TABLE_ID = "table_id"
	DATE     = "date"
	CLOCK    = "clock"

	HOLD_RESULT = "hold_result"
)

// ResolveSlot fills the slot coordinates into Process, either by
// opening an opaque slot token or from explicit input fields.
func ResolveSlot(ctx *checkout.CheckoutContext) error {
	if token := ctx.OptionalString("slot_token"); token != "" {
		slot, err := ctx.Clients.Sealer.OpenSlot(token)
		if err != nil {
			return fmt.Errorf("invalid slot token: %w", err)
		}
		ctx.Process[BAR_ID] = slot.BarID
		ctx.Process[TABLE_ID] = slot.TableID
		ctx.Process[DATE] = slot.Date
		ctx.Process[CLOCK] = slot.Clock
		return nil
	}

	for _, key := range []string{BAR_ID, TABLE_ID, DATE, CLOCK} {
		value, err := ctx.ExtractString(key)
		if err != nil {
			return err
		}
		ctx.Process[key] = value
	}
	return nil
}

// RequestHold places (or refreshes) the caller's hold on the resolved
// slot. A conflict means someone else holds it.
func RequestHold(ctx *checkout.CheckoutContext) error {
	req := model.HoldRequest{
		BarID:   ctx.ProcessString(BAR_ID),
		TableID: ctx.ProcessString(TABLE_ID),
		Date:    ctx.ProcessString(DATE),
		Clock:   ctx.ProcessString(CLOCK),
	}

	resp, err := ctx.Clients.Holds.Hold(context.Background(), req, ctx.Bearer)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("hold rejected: %s", client.GetErrorMessage(resp))
	}

	result, err := ctx.Clients.Holds.DecodeHoldResult(resp)
	if err != nil {
		return err
	}

	ctx.Process[HOLD_RESULT] = result
	return nil
}
