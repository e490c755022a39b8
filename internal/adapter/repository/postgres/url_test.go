package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

type URLRepositoryTestSuite struct {
	repositoryTestSuite
	columns []string
}

func (suite *URLRepositoryTestSuite) SetupSuite() {
	suite.repositoryTestSuite.SetupSuite()
	suite.columns = []string{"id", "short_code", "long_url", "hits", "custom", "created_at"}
}

func (suite *URLRepositoryTestSuite) repo() *URLRepository {
	return NewURLRepository(suite.db)
}

func (suite *URLRepositoryTestSuite) TestSave() {
	suite.Run("short code exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("0000001", "https://example.com", false).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: shortCodeConstraint})

		url, err := suite.repo().Save(context.Background(), "0000001", "https://example.com", false)

		suite.ErrorIs(err, entity.ErrShortCodeExists)
		suite.Nil(url)
	})

	suite.Run("long url exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("0000002", "https://example.com", false).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: canonicalURLConstraint})

		url, err := suite.repo().Save(context.Background(), "0000002", "https://example.com", false)

		suite.ErrorIs(err, entity.ErrLongURLExists)
		suite.NotErrorIs(err, entity.ErrShortCodeExists)
		suite.Nil(url)
	})

	suite.Run("unique violation on another constraint", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("0000003", "https://example.com", false).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: "urls_pkey"})

		url, err := suite.repo().Save(context.Background(), "0000003", "https://example.com", false)

		suite.Error(err)
		suite.NotErrorIs(err, entity.ErrShortCodeExists)
		suite.NotErrorIs(err, entity.ErrLongURLExists)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abc1234", "https://example.com", true).
			WillReturnError(suite.errUnknown)

		url, err := suite.repo().Save(context.Background(), "abc1234", "https://example.com", true)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, "abc1234", "https://example.com", 0, true, time.Time{})

		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abc1234", "https://example.com", true).
			WillReturnRows(rows)

		url, err := suite.repo().Save(context.Background(), "abc1234", "https://example.com", true)

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("abc1234", url.ShortCode)
		suite.Equal("https://example.com", url.LongURL)
		suite.True(url.Custom)
		suite.Zero(url.Hits)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveByShortCode() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("abc1234").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo().RetrieveByShortCode(context.Background(), "abc1234")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("abc1234").
			WillReturnError(suite.errUnknown)

		url, err := suite.repo().RetrieveByShortCode(context.Background(), "abc1234")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, "abc1234", "https://example.com", 42, true, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("abc1234").
			WillReturnRows(rows)

		url, err := suite.repo().RetrieveByShortCode(context.Background(), "abc1234")

		suite.NoError(err)
		suite.Equal("https://example.com", url.LongURL)
		suite.Equal(int64(42), url.Hits)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveByLongURL() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE md5`).
			WithArgs("https://example.com").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo().RetrieveByLongURL(context.Background(), "https://example.com")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(3, "0000003", "https://example.com", 7, false, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE md5`).
			WithArgs("https://example.com").
			WillReturnRows(rows)

		url, err := suite.repo().RetrieveByLongURL(context.Background(), "https://example.com")

		suite.NoError(err)
		suite.Equal("0000003", url.ShortCode)
		suite.False(url.Custom)
	})
}

func (suite *URLRepositoryTestSuite) TestIncrementHits() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`UPDATE urls SET hits`).
			WithArgs("abc1234").
			WillReturnError(suite.errUnknown)

		err := suite.repo().IncrementHits(context.Background(), "abc1234")

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("url not found", func() {
		suite.mock.ExpectExec(`UPDATE urls SET hits`).
			WithArgs("abc1234").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo().IncrementHits(context.Background(), "abc1234")

		suite.ErrorIs(err, entity.ErrURLNotFound)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`UPDATE urls SET hits`).
			WithArgs("abc1234").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.repo().IncrementHits(context.Background(), "abc1234")

		suite.NoError(err)
	})
}

func (suite *URLRepositoryTestSuite) TestList() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY`).
			WillReturnError(suite.errUnknown)

		urls, err := suite.repo().List(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(urls)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(2, "0000002", "https://b.example.com", 9, false, time.Time{}).
			AddRow(1, "0000001", "https://a.example.com", 3, false, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY`).
			WillReturnRows(rows)

		urls, err := suite.repo().List(context.Background())

		suite.NoError(err)
		suite.Len(urls, 2)
		suite.Equal("0000002", urls[0].ShortCode)
		suite.Equal(int64(3), urls[1].Hits)
	})
}
