package store

import (
	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
)

type Stores struct {
	conn db.DBTX
}

func NewStores(conn db.DBTX) *Stores {
	return &Stores{conn: conn}
}

func (s *Stores) Employees() EmployeeStore {
	return newEmployeeStore(s.conn)
}

func (s *Stores) Accomplishments() AccomplishmentStore {
	return newAccomplishmentStore(s.conn)
}

func (s *Stores) Observations() ObservationStore {
	return newObservationStore(s.conn)
}

func (s *Stores) AwardTypes() AwardTypeStore {
	return newAwardTypeStore(s.conn)
}

func (s *Stores) Awards() AwardStore {
	return newAwardStore(s.conn)
}
