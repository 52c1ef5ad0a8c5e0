package core

import "fmt"

// Flow is a named pipeline of steps. A step failure aborts the rest of
// the pipeline and the error carries the failing step's name.
type Flow interface {
	Name() string
	Steps() []*Step
}

type Engine struct {
	flows map[string]Flow
}

func NewEngine(flows ...Flow) *Engine {
	m := map[string]Flow{}
	for _, f := range flows {
		m[f.Name()] = f
	}
	return &Engine{flows: m}
}

func (e *Engine) FlowNames() []string {
	names := make([]string, 0, len(e.flows))
	for name := range e.flows {
		names = append(names, name)
	}
	return names
}

func (e *Engine) Run(flowName string, ctx *CheckoutContext) error {
	f, exists := e.flows[flowName]
	if !exists {
		return fmt.Errorf("unsupported flow: %v", flowName)
	}
	for _, step := range f.Steps() {
		err := step.Execute(ctx)
		if err != nil {
			return fmt.Errorf("%s step failed, pipeline errored: %s", step.Name, err)
		}
	}
	return nil
}
