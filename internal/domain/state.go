package domain

// State is the root aggregate: every account and transaction in
// insertion order. It is persisted atomically as one JSON document.
type State struct {
	Accounts     []*Account
	Transactions []*Transaction
}

// NewState returns an empty state.
func NewState() *State {
	return &State{}
}

// FindAccount returns the account with the given id, or nil.
func (s *State) FindAccount(id string) *Account {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindTransaction returns the transaction with the given id, or nil.
func (s *State) FindTransaction(id string) *Transaction {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// HasTransactionsFor reports whether any transaction references the
// given account.
func (s *State) HasTransactionsFor(accountID string) bool {
	for _, t := range s.Transactions {
		if t.AccountID == accountID {
			return true
		}
	}
	return false
}

// RemoveAccount deletes the account with the given id. It reports
// whether an account was removed.
func (s *State) RemoveAccount(id string) bool {
	for i, a := range s.Accounts {
		if a.ID == id {
			s.Accounts = append(s.Accounts[:i], s.Accounts[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTransaction deletes the transaction with the given id. It
// reports whether a transaction was removed.
func (s *State) RemoveTransaction(id string) bool {
	for i, t := range s.Transactions {
		if t.ID == id {
			s.Transactions = append(s.Transactions[:i], s.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{
		Accounts:     make([]*Account, len(s.Accounts)),
		Transactions: make([]*Transaction, len(s.Transactions)),
	}
	for i, a := range s.Accounts {
		c.Accounts[i] = a.Clone()
	}
	for i, t := range s.Transactions {
		c.Transactions[i] = t.Clone()
	}
	return c
}
