package core

import (
	"fmt"

	"barkeep/pkg/client"
	"barkeep/pkg/sealer"
)

// Clients bundles the downstream services a flow may call.
type Clients struct {
	Holds        *client.HoldsClient
	Bookings     *client.BookingsClient
	Bars         *client.BarsClient
	Availability *client.AvailabilityClient
	Sealer       *sealer.Sealer
}

// CheckoutContext carries one flow execution: raw input, values steps
// collect along the way, and the output returned to the caller. Bearer
// is the caller's token, forwarded to downstream services.
type CheckoutContext struct {
	Input   map[string]any
	Process map[string]any
	Output  map[string]any
	Clients *Clients
	Bearer  string
}

func NewCheckoutContext(input map[string]any, clients *Clients, bearer string) *CheckoutContext {
	return &CheckoutContext{
		Input:   input,
		Process: make(map[string]any),
		Output:  make(map[string]any),
		Clients: clients,
		Bearer:  bearer,
	}
}

func MissingParamErr(paramName string) error {
	return fmt.Errorf("required param [%v] is missing", paramName)
}

// ExtractString reads a required string from the flow input.
func (ctx *CheckoutContext) ExtractString(key string) (string, error) {
	raw, ok := ctx.Input[key]
	if !ok {
		return "", MissingParamErr(key)
	}
	str, ok := raw.(string)
	if !ok || str == "" {
		return "", MissingParamErr(key)
	}
	return str, nil
}

// OptionalString reads an optional string from the flow input.
func (ctx *CheckoutContext) OptionalString(key string) string {
	if raw, ok := ctx.Input[key]; ok {
		if str, ok := raw.(string); ok {
			return str
		}
	}
	return ""
}

// ProcessString reads a string a previous step stored.
func (ctx *CheckoutContext) ProcessString(key string) string {
	if raw, ok := ctx.Process[key]; ok {
		if str, ok := raw.(string); ok {
			return str
		}
	}
	return ""
}
