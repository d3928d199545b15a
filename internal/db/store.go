// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/panchang-seva/panchangam/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// panchang day functions
	UpsertDay(day *model.Day) error
	GetDayByDate(date string) (*model.Day, error)
	ListDaysByMonth(year, month int) ([]model.Day, error)

	// festival functions
	ReplaceFestivals(year int, byDate map[string][]string) error
	GetFestivalsByDate(date string) ([]string, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	return GetUserByEmail(email)
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	return GetUserByID(id)
}

func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (s *pgStore) UpsertDay(day *model.Day) error {
	return UpsertDay(day)
}

func (s *pgStore) GetDayByDate(date string) (*model.Day, error) {
	return GetDayByDate(date)
}

func (s *pgStore) ListDaysByMonth(year, month int) ([]model.Day, error) {
	return ListDaysByMonth(year, month)
}

func (s *pgStore) ReplaceFestivals(year int, byDate map[string][]string) error {
	return ReplaceFestivals(year, byDate)
}

func (s *pgStore) GetFestivalsByDate(date string) ([]string, error) {
	return GetFestivalsByDate(date)
}
