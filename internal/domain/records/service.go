package records

import "context"

// Service is the read-through surface over the store and cache, plus the
// direct-save paths for the kinds that have no derived aggregate of their own
// (employees, schemes, clients).
type Service struct {
	store *Store
	cache *Cache
}

func NewService(store *Store, cache *Cache) *Service {
	return &Service{store: store, cache: cache}
}

func (s *Service) WashEvents(ctx context.Context) ([]WashEvent, error) {
	if events, ok := s.cache.WashEvents(); ok {
		return events, nil
	}
	events, err := s.store.ListWashEvents(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetWashEvents(events)
	return events, nil
}

func (s *Service) WashEvent(ctx context.Context, id string) (WashEvent, error) {
	return s.store.GetWashEvent(ctx, id)
}

func (s *Service) Expenses(ctx context.Context) ([]Expense, error) {
	if expenses, ok := s.cache.Expenses(); ok {
		return expenses, nil
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetExpenses(expenses)
	return expenses, nil
}

func (s *Service) Expense(ctx context.Context, id string) (Expense, error) {
	return s.store.GetExpense(ctx, id)
}

func (s *Service) Employees(ctx context.Context) ([]Employee, error) {
	if employees, ok := s.cache.Employees(); ok {
		return employees, nil
	}
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetEmployees(employees)
	return employees, nil
}

func (s *Service) Employee(ctx context.Context, id string) (Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

func (s *Service) SaveEmployee(ctx context.Context, employee Employee) error {
	if err := s.store.PutEmployee(ctx, employee); err != nil {
		return err
	}
	s.cache.InvalidateEmployees()
	return nil
}

func (s *Service) Schemes(ctx context.Context) ([]SalaryScheme, error) {
	if schemes, ok := s.cache.Schemes(); ok {
		return schemes, nil
	}
	schemes, err := s.store.ListSchemes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetSchemes(schemes)
	return schemes, nil
}

func (s *Service) Scheme(ctx context.Context, id string) (SalaryScheme, error) {
	return s.store.GetScheme(ctx, id)
}

func (s *Service) SaveScheme(ctx context.Context, scheme SalaryScheme) error {
	if err := s.store.PutScheme(ctx, scheme); err != nil {
		return err
	}
	s.cache.InvalidateSchemes()
	return nil
}

func (s *Service) Clients(ctx context.Context) ([]Client, error) {
	if clients, ok := s.cache.Clients(); ok {
		return clients, nil
	}
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetClients(clients)
	return clients, nil
}

func (s *Service) Client(ctx context.Context, id string) (Client, error) {
	return s.store.GetClient(ctx, id)
}

func (s *Service) SaveClient(ctx context.Context, client Client) error {
	if err := s.store.PutClient(ctx, client); err != nil {
		return err
	}
	s.cache.InvalidateClients()
	return nil
}

func (s *Service) ClientTransactions(ctx context.Context, clientID string) ([]ClientTransaction, error) {
	if txns, ok := s.cache.ClientTransactions(clientID); ok {
		return txns, nil
	}
	txns, err := s.store.ListClientTransactions(ctx, clientID)
	if err != nil {
		return nil, err
	}
	s.cache.SetClientTransactions(clientID, txns)
	return txns, nil
}

func (s *Service) EmployeeTransactions(ctx context.Context, employeeID string) ([]EmployeeTransaction, error) {
	if txns, ok := s.cache.EmployeeTransactions(employeeID); ok {
		return txns, nil
	}
	txns, err := s.store.ListEmployeeTransactions(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	s.cache.SetEmployeeTransactions(employeeID, txns)
	return txns, nil
}

func (s *Service) Stock(ctx context.Context) (float64, error) {
	if grams, ok := s.cache.Stock(); ok {
		return grams, nil
	}
	grams, err := s.store.Stock(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.SetStock(grams)
	return grams, nil
}
