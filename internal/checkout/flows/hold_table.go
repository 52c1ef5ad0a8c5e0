package flows

import (
	"fmt"

	checkout "barkeep/internal/checkout/core"
	"barkeep/pkg/model"
)

// HoldTable reserves one table slot for the caller and hands back the
// hold expiry plus the slot token to book with.
type HoldTable struct{}

func (f *HoldTable) Name() string {
	return "hold_table"
}

func (f *HoldTable) Steps() []*checkout.Step {
	return []*checkout.Step{
		checkout.NewStep("resolve_slot", ResolveSlot),
		checkout.NewStep("request_hold", RequestHold),
		checkout.NewStep("collect_hold", collectHold),
	}
}

func collectHold(ctx *checkout.CheckoutContext) error {
	result, ok := ctx.Process[HOLD_RESULT].(*model.HoldResult)
	if !ok {
		return fmt.Errorf("hold result missing from pipeline")
	}

	ctx.Output["hold"] = result
	ctx.Output["slot_token"] = result.SlotToken
	return nil
}
