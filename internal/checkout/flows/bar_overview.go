package flows

import (
	"context"
	"fmt"

	checkout "barkeep/internal/checkout/core"
	"barkeep/pkg/client"
)

// BarOverview assembles everything a booking UI needs for one bar and
// slot: the bar card, its operating windows and per-table hold state.
type BarOverview struct{}

func (f *BarOverview) Name() string {
	return "bar_overview"
}

func (f *BarOverview) Steps() []*checkout.Step {
	return []*checkout.Step{
		checkout.NewStep("extract_slot", extractOverviewSlot),
		checkout.NewStep("fetch_bar", fetchBar),
		checkout.NewStep("fetch_windows", fetchWindows),
		checkout.NewStep("fetch_table_slots", fetchTableSlots),
	}
}

func extractOverviewSlot(ctx *checkout.CheckoutContext) error {
	for _, key := range []string{BAR_ID, DATE, CLOCK} {
		value, err := ctx.ExtractString(key)
		if err != nil {
			return err
		}
		ctx.Process[key] = value
	}
	return nil
}

func fetchBar(ctx *checkout.CheckoutContext) error {
	resp, err := ctx.Clients.Bars.GetByID(context.Background(), ctx.ProcessString(BAR_ID))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("bar lookup failed: %s", client.GetErrorMessage(resp))
	}

	bar, err := ctx.Clients.Bars.DecodeBar(resp)
	if err != nil {
		return err
	}

	ctx.Output["bar"] = bar
	return nil
}

func fetchWindows(ctx *checkout.CheckoutContext) error {
	resp, err := ctx.Clients.Availability.GetWindows(context.Background(), ctx.ProcessString(BAR_ID))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("window lookup failed: %s", client.GetErrorMessage(resp))
	}

	windows, err := ctx.Clients.Availability.DecodeWindows(resp)
	if err != nil {
		return err
	}

	ctx.Output["windows"] = windows
	return nil
}

func fetchTableSlots(ctx *checkout.CheckoutContext) error {
	resp, err := ctx.Clients.Holds.List(context.Background(),
		ctx.ProcessString(BAR_ID), ctx.ProcessString(DATE), ctx.ProcessString(CLOCK))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("hold list failed: %s", client.GetErrorMessage(resp))
	}

	statuses, err := ctx.Clients.Holds.DecodeStatuses(resp)
	if err != nil {
		return err
	}

	ctx.Output["tables"] = statuses
	return nil
}
