package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/invertedindex"
	"github.com/cxxxr/wordgram/lib/primitive"
)

// Database wraps one sqlite file. Everything between Connect and Close runs
// in a single transaction.
type Database struct {
	databaseFile string
	db           *sqlx.DB
	tx           *sqlx.Tx
	prepareStatements
}

type prepareStatements struct {
	insertDocument            *sqlx.Stmt
	resolveDocumentByFilename *sqlx.Stmt
	resolveDocumentById       *sqlx.Stmt
	resolveAllDocuments       *sqlx.Stmt

	resolveTokenByTerm *sqlx.Stmt
	resolveTokenById   *sqlx.Stmt
	resolveAllTokens   *sqlx.Stmt
	insertToken        *sqlx.Stmt

	upsertInvertedIndex       *sqlx.Stmt
	resolveWholeInvertedIndex *sqlx.Stmt
}

func New(databaseFile string) *Database {
	return &Database{databaseFile: databaseFile}
}

func connectSqlite3(databaseFile string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", databaseFile)
	if err != nil {
		return nil, errors.Wrapf(err, "file: %s", databaseFile)
	}
	return db, nil
}

func (d *Database) InitTables() error {
	db, err := connectSqlite3(d.databaseFile)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return errors.Wrapf(err, "file: %s", d.databaseFile)
	}
	return nil
}

func (d *Database) Connect() error {
	db, err := connectSqlite3(d.databaseFile)
	if err != nil {
		return err
	}
	d.db = db

	tx, err := db.Beginx()
	if err != nil {
		db.Close()
		return errors.WithStack(err)
	}
	d.tx = tx

	if err := d.initializePrepareStatements(); err != nil {
		tx.Rollback()
		db.Close()
		return err
	}

	return nil
}

// Close commits the pending transaction and closes the connection.
func (d *Database) Close() error {
	if err := d.tx.Commit(); err != nil {
		d.db.Close()
		return errors.WithStack(err)
	}
	return errors.WithStack(d.db.Close())
}

// Rollback discards everything written since Connect and closes the
// connection.
func (d *Database) Rollback() error {
	if err := d.tx.Rollback(); err != nil {
		d.db.Close()
		return errors.WithStack(err)
	}
	return errors.WithStack(d.db.Close())
}

// Finish commits when err is nil and rolls back otherwise. It returns err,
// or the commit error when err is nil.
func (d *Database) Finish(err error) error {
	if err != nil {
		d.Rollback()
		return err
	}
	return d.Close()
}

func (d *Database) prepare(ctx context.Context, query string) (*sqlx.Stmt, error) {
	stmt, err := d.tx.PreparexContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "prepare: %s", query)
	}
	return stmt, nil
}

func (d *Database) initializePrepareStatements() error {
	ctx := context.Background()

	statements := []struct {
		dst   **sqlx.Stmt
		query string
	}{
		{&d.insertDocument, `INSERT INTO document (filename, body) VALUES (?, ?)`},
		{&d.resolveDocumentByFilename, `SELECT id, filename, body FROM document WHERE filename = ? LIMIT 1`},
		{&d.resolveDocumentById, `SELECT id, filename, body FROM document WHERE id = ? LIMIT 1`},
		{&d.resolveAllDocuments, `SELECT id, filename FROM document ORDER BY id`},
		{&d.resolveTokenByTerm, `SELECT id, term FROM token WHERE term = ? LIMIT 1`},
		{&d.resolveTokenById, `SELECT id, term FROM token WHERE id = ? LIMIT 1`},
		{&d.resolveAllTokens, `SELECT id, term FROM token`},
		{&d.insertToken, `INSERT INTO token (id, term) VALUES (?, ?)`},
		{&d.upsertInvertedIndex, `INSERT INTO inverted_index (token_id, posting_list) VALUES (?, ?)
ON CONFLICT(token_id) DO UPDATE SET posting_list = excluded.posting_list`},
		{&d.resolveWholeInvertedIndex, `SELECT token_id, posting_list FROM inverted_index`},
	}

	for _, s := range statements {
		stmt, err := d.prepare(ctx, s.query)
		if err != nil {
			return err
		}
		*s.dst = stmt
	}

	return nil
}

func (d *Database) InsertDocument(filename, body string) error {
	_, err := d.insertDocument.Exec(filename, body)
	if err != nil {
		return errors.Wrapf(err, "document: %s", filename)
	}
	return nil
}

func (d *Database) ResolveDocumentByFilename(filename string) (*Document, error) {
	var doc Document
	err := d.resolveDocumentByFilename.Get(&doc, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "document: %s", filename)
	}
	return &doc, nil
}

func (d *Database) ResolveDocumentById(id primitive.DocumentId) (*Document, error) {
	var doc Document
	err := d.resolveDocumentById.Get(&doc, id)
	if err != nil {
		return nil, errors.Wrapf(err, "document: %d", id)
	}
	return &doc, nil
}

func (d *Database) ResolveDocumentsByIds(ids []primitive.DocumentId) ([]*Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, params, err := sqlx.In(`SELECT id, filename, body FROM document WHERE id in (?)`, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []*Document
	if err := d.tx.Select(&records, d.tx.Rebind(query), params...); err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (d *Database) ResolveAllDocuments() ([]*Document, error) {
	var docs []*Document
	err := d.resolveAllDocuments.Select(&docs)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return docs, nil
}

func (d *Database) resolveToken(s *sqlx.Stmt, arg interface{}) (*Token, error) {
	var tokens []Token
	err := s.Select(&tokens, arg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	return &tokens[0], nil
}

// ResolveTokenByTerm returns nil without an error when term is unknown.
func (d *Database) ResolveTokenByTerm(term string) (*Token, error) {
	return d.resolveToken(d.resolveTokenByTerm, term)
}

func (d *Database) ResolveTokenById(id primitive.TokenId) (*Token, error) {
	return d.resolveToken(d.resolveTokenById, id)
}

func (d *Database) ResolveTokensByTerms(terms []string) ([]*Token, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	query, params, err := sqlx.In(`SELECT id, term FROM token WHERE term in (?)`, terms)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []*Token
	if err := d.tx.Select(&records, d.tx.Rebind(query), params...); err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (d *Database) ResolveAllTokens() ([]*Token, error) {
	var tokens []*Token
	err := d.resolveAllTokens.Select(&tokens)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return tokens, nil
}

func (d *Database) InsertToken(tokenId primitive.TokenId, term string) error {
	_, err := d.insertToken.Exec(tokenId, term)
	if err != nil {
		return errors.Wrapf(err, "token: %q", term)
	}
	return nil
}

func (d *Database) UpsertInvertedIndex(tokenId primitive.TokenId, blob []byte) error {
	_, err := d.upsertInvertedIndex.Exec(tokenId, blob)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func decodeRecords(records []*InvertedIndex) (*invertedindex.InvertedIndex, error) {
	index := invertedindex.New()
	for _, record := range records {
		postingList, err := invertedindex.DecodePostingList(record.PostingList)
		if err != nil {
			return nil, errors.Wrapf(err, "token: %s", record.TokenId)
		}
		index.Set(record.TokenId, postingList)
	}
	return index, nil
}

func (d *Database) ResolveInvertedIndex(tokenIds []primitive.TokenId) (
	*invertedindex.InvertedIndex,
	error,
) {
	if len(tokenIds) == 0 {
		return invertedindex.New(), nil
	}
	query, params, err := sqlx.In(
		`SELECT token_id, posting_list FROM inverted_index WHERE token_id in (?)`,
		tokenIds,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []*InvertedIndex
	if err := d.tx.Select(&records, d.tx.Rebind(query), params...); err != nil {
		return nil, errors.WithStack(err)
	}
	return decodeRecords(records)
}

func (d *Database) ResolveWholeInvertedIndex() (*invertedindex.InvertedIndex, error) {
	var records []*InvertedIndex
	if err := d.resolveWholeInvertedIndex.Select(&records); err != nil {
		return nil, errors.WithStack(err)
	}
	return decodeRecords(records)
}
