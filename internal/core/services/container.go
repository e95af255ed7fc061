package services

import (
	portsrepo "github.com/vhrodriguesv/clinicfin/internal/core/ports/repositories"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
)

// RepositoryContainer bundles the repository facades the services depend on.
type RepositoryContainer struct {
	Transaction   portsrepo.TransactionRepositoryFacade
	PaymentMethod portsrepo.PaymentMethodRepositoryFacade
}

// NewServiceContainer wires every service with its repositories and returns
// the container handed to the HTTP layer.
func NewServiceContainer(repos RepositoryContainer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction:   NewTransactionService(repos.Transaction, repos.PaymentMethod),
		CashFlow:      NewCashFlowService(repos.Transaction),
		PaymentMethod: NewPaymentMethodService(repos.PaymentMethod),
	}
}
