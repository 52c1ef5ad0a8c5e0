package service

import (
	"fmt"

	checkout "barkeep/internal/checkout/core"
	"barkeep/internal/checkout/flows"
	"barkeep/pkg/logger"
)

type CheckoutService struct {
	engine  *checkout.Engine
	clients *checkout.Clients
	Logger  *logger.Logger
}

func NewCheckoutService(clients *checkout.Clients, log *logger.Logger) *CheckoutService {
	return &CheckoutService{
		engine: checkout.NewEngine(
			&flows.HoldTable{},
			&flows.CreateBooking{},
			&flows.BarOverview{},
		),
		clients: clients,
		Logger:  log,
	}
}

func (s *CheckoutService) ExecuteFlow(flowName string, input map[string]any, bearer string) (map[string]any, error) {
	ctx := checkout.NewCheckoutContext(input, s.clients, bearer)
	if err := s.engine.Run(flowName, ctx); err != nil {
		return nil, fmt.Errorf("flow execution failed: %v", err)
	}
	return ctx.Output, nil
}

func (s *CheckoutService) GetAvailableFlows() []string {
	return s.engine.FlowNames()
}
