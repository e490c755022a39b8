package postgres

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

// repositoryTestSuite wires a fresh sqlmock database into every sub-test.
type repositoryTestSuite struct {
	suite.Suite
	errUnknown error
	db         *sqlx.DB
	mock       sqlmock.Sqlmock
}

func (suite *repositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
}

func (suite *repositoryTestSuite) SetupSubTest() {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}
	suite.T().Cleanup(func() {
		mockDB.Close()
	})

	suite.db = sqlx.NewDb(mockDB, "sqlmock")
	suite.mock = mock
}

func (suite *repositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func TestRepositories(t *testing.T) {
	suite.Run(t, new(URLRepositoryTestSuite))
	suite.Run(t, new(CounterRepositoryTestSuite))
	suite.Run(t, new(StatsRepositoryTestSuite))
	suite.Run(t, new(AliasRepositoryTestSuite))
}
