package postgres

import (
	"context"
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
)

type CounterRepositoryTestSuite struct {
	repositoryTestSuite
}

func (suite *CounterRepositoryTestSuite) TestNext() {
	suite.Run("counter missing", func() {
		suite.mock.ExpectQuery(`UPDATE counters SET value = value \+ 1`).
			WithArgs(shortCodeCounterID).
			WillReturnError(sql.ErrNoRows)

		value, err := NewCounterRepository(suite.db).Next(context.Background())

		suite.ErrorIs(err, errCounterMissing)
		suite.Zero(value)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`UPDATE counters SET value = value \+ 1`).
			WithArgs(shortCodeCounterID).
			WillReturnError(suite.errUnknown)

		value, err := NewCounterRepository(suite.db).Next(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.Zero(value)
	})

	suite.Run("success", func() {
		repo := NewCounterRepository(suite.db)

		for _, want := range []int64{1, 2, 3} {
			suite.mock.ExpectQuery(`UPDATE counters SET value = value \+ 1`).
				WithArgs(shortCodeCounterID).
				WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(want))
		}

		for _, want := range []int64{1, 2, 3} {
			value, err := repo.Next(context.Background())

			suite.NoError(err)
			suite.Equal(want, value)
		}
	})
}
