package ipld

import (
	"database/sql"

	block "github.com/ipfs/go-block-format"
	cid "github.com/ipfs/go-cid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/xerrors"
)

const createBlocksTable = `CREATE TABLE IF NOT EXISTS blocks (
	cid  BLOB PRIMARY KEY,
	data BLOB NOT NULL
)`

// SQLiteBlockStore persists blocks in a single SQLite table keyed by CID bytes.
// Blocks are immutable, so a put of an existing CID is a no-op.
type SQLiteBlockStore struct {
	db   *sql.DB
	path string
}

var _ IterableBlockstore = (*SQLiteBlockStore)(nil)

// Opens (creating if necessary) a block store in the SQLite database at path.
func OpenSQLiteBlockStore(path string) (*SQLiteBlockStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, xerrors.Errorf("failed to open sqlite block store %s: %w", path, err)
	}
	if _, err := db.Exec(createBlocksTable); err != nil {
		_ = db.Close()
		return nil, xerrors.Errorf("failed to create blocks table in %s: %w", path, err)
	}
	log.Infow("opened block store", "path", path)
	return &SQLiteBlockStore{db: db, path: path}, nil
}

func (s *SQLiteBlockStore) Get(c cid.Cid) (block.Block, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM blocks WHERE cid = ?`, c.Bytes()).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, xerrors.Errorf("get %s: %w", c, ErrNotFound)
	} else if err != nil {
		return nil, xerrors.Errorf("failed to read block %s: %w", c, err)
	}
	return block.NewBlockWithCid(data, c)
}

func (s *SQLiteBlockStore) Put(b block.Block) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO blocks (cid, data) VALUES (?, ?)`, b.Cid().Bytes(), b.RawData())
	if err != nil {
		return xerrors.Errorf("failed to write block %s: %w", b.Cid(), err)
	}
	return nil
}

func (s *SQLiteBlockStore) ForEach(fn func(block.Block) error) error {
	rows, err := s.db.Query(`SELECT cid, data FROM blocks`)
	if err != nil {
		return xerrors.Errorf("failed to list blocks: %w", err)
	}

	// Collect first so that fn may write to the store while we iterate.
	var blocks []block.Block
	for rows.Next() {
		var key, data []byte
		if err := rows.Scan(&key, &data); err != nil {
			_ = rows.Close()
			return err
		}
		c, err := cid.Cast(key)
		if err != nil {
			_ = rows.Close()
			return xerrors.Errorf("invalid cid in block store: %w", err)
		}
		b, err := block.NewBlockWithCid(data, c)
		if err != nil {
			_ = rows.Close()
			return err
		}
		blocks = append(blocks, b)
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, b := range blocks {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteBlockStore) Close() error {
	log.Debugw("closing block store", "path", s.path)
	return s.db.Close()
}
