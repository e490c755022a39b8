package postgres

import (
	"context"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vadimbarashkov/shorty/internal/entity"
)

type AliasRepositoryTestSuite struct {
	repositoryTestSuite
}

func (suite *AliasRepositoryTestSuite) expectUser(username string, id int64) {
	suite.mock.ExpectQuery(`SELECT id FROM users`).
		WithArgs(username).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func (suite *AliasRepositoryTestSuite) TestBind() {
	suite.Run("user not found", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT id FROM users`).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		suite.mock.ExpectRollback()

		err := NewAliasRepository(suite.db).Bind(context.Background(), "alice", "https://example.com", "0000001")

		suite.ErrorIs(err, entity.ErrUserNotFound)
	})

	suite.Run("alias insert error", func() {
		suite.mock.ExpectBegin()
		suite.expectUser("alice", 1)
		suite.mock.ExpectQuery(`INSERT INTO user_urls`).
			WithArgs(1, "https://example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		suite.mock.ExpectExec(`INSERT INTO user_aliases`).
			WithArgs(10, "0000001").
			WillReturnError(suite.errUnknown)
		suite.mock.ExpectRollback()

		err := NewAliasRepository(suite.db).Bind(context.Background(), "alice", "https://example.com", "0000001")

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("success", func() {
		suite.mock.ExpectBegin()
		suite.expectUser("alice", 1)
		suite.mock.ExpectQuery(`INSERT INTO user_urls(.+)ON CONFLICT`).
			WithArgs(1, "https://example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		suite.mock.ExpectExec(`INSERT INTO user_aliases(.+)ON CONFLICT(.+)DO NOTHING`).
			WithArgs(10, "0000001").
			WillReturnResult(sqlmock.NewResult(1, 1))
		suite.mock.ExpectCommit()

		err := NewAliasRepository(suite.db).Bind(context.Background(), "alice", "https://example.com", "0000001")

		suite.NoError(err)
	})
}

func (suite *AliasRepositoryTestSuite) TestUnbind() {
	suite.Run("alias not found", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectExec(`DELETE FROM user_aliases`).
			WithArgs("alice", "https://example.com", "0000001").
			WillReturnResult(sqlmock.NewResult(0, 0))
		suite.mock.ExpectRollback()

		err := NewAliasRepository(suite.db).Unbind(context.Background(), "alice", "https://example.com", "0000001")

		suite.ErrorIs(err, entity.ErrAliasNotFound)
	})

	suite.Run("remaining aliases keep entry", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectExec(`DELETE FROM user_aliases`).
			WithArgs("alice", "https://example.com", "0000001").
			WillReturnResult(sqlmock.NewResult(0, 1))
		suite.mock.ExpectExec(`DELETE FROM user_urls(.+)NOT EXISTS`).
			WithArgs("alice", "https://example.com").
			WillReturnResult(sqlmock.NewResult(0, 0))
		suite.mock.ExpectCommit()

		err := NewAliasRepository(suite.db).Unbind(context.Background(), "alice", "https://example.com", "0000001")

		suite.NoError(err)
	})

	suite.Run("last alias removes entry", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectExec(`DELETE FROM user_aliases`).
			WithArgs("alice", "https://example.com", "0000001").
			WillReturnResult(sqlmock.NewResult(0, 1))
		suite.mock.ExpectExec(`DELETE FROM user_urls(.+)NOT EXISTS`).
			WithArgs("alice", "https://example.com").
			WillReturnResult(sqlmock.NewResult(0, 1))
		suite.mock.ExpectCommit()

		err := NewAliasRepository(suite.db).Unbind(context.Background(), "alice", "https://example.com", "0000001")

		suite.NoError(err)
	})

	suite.Run("entry delete error", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectExec(`DELETE FROM user_aliases`).
			WithArgs("alice", "https://example.com", "0000001").
			WillReturnResult(sqlmock.NewResult(0, 1))
		suite.mock.ExpectExec(`DELETE FROM user_urls`).
			WithArgs("alice", "https://example.com").
			WillReturnError(suite.errUnknown)
		suite.mock.ExpectRollback()

		err := NewAliasRepository(suite.db).Unbind(context.Background(), "alice", "https://example.com", "0000001")

		suite.ErrorIs(err, suite.errUnknown)
	})
}

func (suite *AliasRepositoryTestSuite) TestListByUser() {
	suite.Run("user not found", func() {
		suite.mock.ExpectQuery(`SELECT id FROM users`).
			WithArgs("bob").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		urls, err := NewAliasRepository(suite.db).ListByUser(context.Background(), "bob")

		suite.ErrorIs(err, entity.ErrUserNotFound)
		suite.Nil(urls)
	})

	suite.Run("no urls", func() {
		suite.expectUser("alice", 1)
		suite.mock.ExpectQuery(`SELECT u.long_url, a.alias`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"long_url", "alias"}))

		urls, err := NewAliasRepository(suite.db).ListByUser(context.Background(), "alice")

		suite.NoError(err)
		suite.Empty(urls)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows([]string{"long_url", "alias"}).
			AddRow("https://a.example.com", "0000001").
			AddRow("https://a.example.com", "myalias1").
			AddRow("https://b.example.com", "0000002")

		suite.expectUser("alice", 1)
		suite.mock.ExpectQuery(`SELECT u.long_url, a.alias`).
			WithArgs(1).
			WillReturnRows(rows)

		urls, err := NewAliasRepository(suite.db).ListByUser(context.Background(), "alice")

		suite.NoError(err)
		suite.Equal([]entity.UserURL{
			{LongURL: "https://a.example.com", Aliases: []string{"0000001", "myalias1"}},
			{LongURL: "https://b.example.com", Aliases: []string{"0000002"}},
		}, urls)
	})
}
