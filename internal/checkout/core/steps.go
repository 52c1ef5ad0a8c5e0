package core

type Step struct {
	Name    string
	Execute func(ctx *CheckoutContext) error
}

func NewStep(name string, execute func(ctx *CheckoutContext) error) *Step {
	return &Step{
		Name:    name,
		Execute: execute,
	}
}
