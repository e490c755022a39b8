package postgres

import (
	"context"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

type StatsRepositoryTestSuite struct {
	repositoryTestSuite
}

func (suite *StatsRepositoryTestSuite) TestIncrementLocation() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`INSERT INTO location_stats`).
			WithArgs("Berlin").
			WillReturnError(suite.errUnknown)

		err := NewStatsRepository(suite.db).IncrementLocation(context.Background(), "Berlin")

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`INSERT INTO location_stats(.+)ON CONFLICT \(city\) DO UPDATE`).
			WithArgs("Berlin").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewStatsRepository(suite.db).IncrementLocation(context.Background(), "Berlin")

		suite.NoError(err)
	})
}

func (suite *StatsRepositoryTestSuite) TestIncrementDate() {
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`INSERT INTO date_stats`).
			WithArgs("5/3/2024", day).
			WillReturnError(suite.errUnknown)

		err := NewStatsRepository(suite.db).IncrementDate(context.Background(), "5/3/2024", day)

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`INSERT INTO date_stats(.+)ON CONFLICT \(date_key\) DO UPDATE`).
			WithArgs("5/3/2024", day).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewStatsRepository(suite.db).IncrementDate(context.Background(), "5/3/2024", day)

		suite.NoError(err)
	})
}

func (suite *StatsRepositoryTestSuite) TestListLocations() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT city, hits FROM location_stats`).
			WillReturnError(suite.errUnknown)

		stats, err := NewStatsRepository(suite.db).ListLocations(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(stats)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows([]string{"city", "hits"}).
			AddRow("Berlin", 10).
			AddRow("unknown", 2)

		suite.mock.ExpectQuery(`SELECT city, hits FROM location_stats`).
			WillReturnRows(rows)

		stats, err := NewStatsRepository(suite.db).ListLocations(context.Background())

		suite.NoError(err)
		suite.Equal([]entity.LocationStat{
			{City: "Berlin", Hits: 10},
			{City: "unknown", Hits: 2},
		}, stats)
	})
}

func (suite *StatsRepositoryTestSuite) TestListRecentDates() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT date_key, hits FROM`).
			WithArgs(7).
			WillReturnError(suite.errUnknown)

		stats, err := NewStatsRepository(suite.db).ListRecentDates(context.Background(), 7)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(stats)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows([]string{"date_key", "hits"}).
			AddRow("30/12/2023", 4).
			AddRow("2/1/2024", 1)

		suite.mock.ExpectQuery(`SELECT date_key, hits FROM`).
			WithArgs(7).
			WillReturnRows(rows)

		stats, err := NewStatsRepository(suite.db).ListRecentDates(context.Background(), 7)

		suite.NoError(err)
		suite.Equal([]entity.DateStat{
			{Key: "30/12/2023", Hits: 4},
			{Key: "2/1/2024", Hits: 1},
		}, stats)
	})
}
