package records

import "sync"

// Cache memoizes record lists between writes. It is an explicit service
// object handed to readers and reconcilers; it is never authoritative and can
// be rebuilt from the store at any time. Every mutating operation invalidates
// the kinds it touched before returning, so a follow-up read in the same
// process observes fresh state. There is no cross-process invalidation.
type Cache struct {
	mu sync.RWMutex

	washEvents   []WashEvent
	washEventsOK bool

	expenses   []Expense
	expensesOK bool

	employees   []Employee
	employeesOK bool

	schemes   []SalaryScheme
	schemesOK bool

	clients   []Client
	clientsOK bool

	stock   float64
	stockOK bool

	clientTxns   map[string][]ClientTransaction
	employeeTxns map[string][]EmployeeTransaction
}

func NewCache() *Cache {
	return &Cache{
		clientTxns:   make(map[string][]ClientTransaction),
		employeeTxns: make(map[string][]EmployeeTransaction),
	}
}

func (c *Cache) WashEvents() ([]WashEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.washEvents, c.washEventsOK
}

func (c *Cache) SetWashEvents(events []WashEvent) {
	c.mu.Lock()
	c.washEvents, c.washEventsOK = events, true
	c.mu.Unlock()
}

func (c *Cache) InvalidateWashEvents() {
	c.mu.Lock()
	c.washEvents, c.washEventsOK = nil, false
	c.mu.Unlock()
}

func (c *Cache) Expenses() ([]Expense, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expenses, c.expensesOK
}

func (c *Cache) SetExpenses(expenses []Expense) {
	c.mu.Lock()
	c.expenses, c.expensesOK = expenses, true
	c.mu.Unlock()
}

func (c *Cache) InvalidateExpenses() {
	c.mu.Lock()
	c.expenses, c.expensesOK = nil, false
	c.mu.Unlock()
}

func (c *Cache) Employees() ([]Employee, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.employees, c.employeesOK
}

func (c *Cache) SetEmployees(employees []Employee) {
	c.mu.Lock()
	c.employees, c.employeesOK = employees, true
	c.mu.Unlock()
}

func (c *Cache) InvalidateEmployees() {
	c.mu.Lock()
	c.employees, c.employeesOK = nil, false
	c.mu.Unlock()
}

func (c *Cache) Schemes() ([]SalaryScheme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schemes, c.schemesOK
}

func (c *Cache) SetSchemes(schemes []SalaryScheme) {
	c.mu.Lock()
	c.schemes, c.schemesOK = schemes, true
	c.mu.Unlock()
}

func (c *Cache) InvalidateSchemes() {
	c.mu.Lock()
	c.schemes, c.schemesOK = nil, false
	c.mu.Unlock()
}

func (c *Cache) Clients() ([]Client, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clients, c.clientsOK
}

func (c *Cache) SetClients(clients []Client) {
	c.mu.Lock()
	c.clients, c.clientsOK = clients, true
	c.mu.Unlock()
}

func (c *Cache) InvalidateClients() {
	c.mu.Lock()
	c.clients, c.clientsOK = nil, false
	c.mu.Unlock()
}

func (c *Cache) Stock() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stock, c.stockOK
}

func (c *Cache) SetStock(grams float64) {
	c.mu.Lock()
	c.stock, c.stockOK = grams, true
	c.mu.Unlock()
}

func (c *Cache) InvalidateStock() {
	c.mu.Lock()
	c.stock, c.stockOK = 0, false
	c.mu.Unlock()
}

func (c *Cache) ClientTransactions(clientID string) ([]ClientTransaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	txns, ok := c.clientTxns[clientID]
	return txns, ok
}

func (c *Cache) SetClientTransactions(clientID string, txns []ClientTransaction) {
	c.mu.Lock()
	c.clientTxns[clientID] = txns
	c.mu.Unlock()
}

func (c *Cache) InvalidateClientTransactions(clientID string) {
	c.mu.Lock()
	delete(c.clientTxns, clientID)
	c.mu.Unlock()
}

func (c *Cache) EmployeeTransactions(employeeID string) ([]EmployeeTransaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	txns, ok := c.employeeTxns[employeeID]
	return txns, ok
}

func (c *Cache) SetEmployeeTransactions(employeeID string, txns []EmployeeTransaction) {
	c.mu.Lock()
	c.employeeTxns[employeeID] = txns
	c.mu.Unlock()
}

func (c *Cache) InvalidateEmployeeTransactions(employeeID string) {
	c.mu.Lock()
	delete(c.employeeTxns, employeeID)
	c.mu.Unlock()
}
