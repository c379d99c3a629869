package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/kailas-cloud/ordex/internal/db"
)

// CreateIndex creates an FT index from the given definition.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	args, err := buildCreateArgs(def)
	if err != nil {
		return err
	}

	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}

// DropIndex removes an FT index by name. Documents are kept.
func (s *Store) DropIndex(ctx context.Context, name string) error {
	cmd := s.b().Arbitrary("FT.DROPINDEX").Args(name).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "unknown index name") {
			return db.ErrIndexNotFound
		}
		return &db.Error{Op: db.OpDropIndex, Err: err}
	}
	return nil
}

// IndexExists probes index existence via FT.INFO; "unknown index name" means absent.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	cmd := s.b().Arbitrary("FT.INFO").Args(name).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "unknown index name") {
			return false, nil
		}
		return false, &db.Error{Op: db.OpIndexInfo, Err: err}
	}
	return true, nil
}

// ListIndexes returns the names of all FT indexes.
func (s *Store) ListIndexes(ctx context.Context) ([]string, error) {
	cmd := s.b().Arbitrary("FT._LIST").Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpListIndexes, Err: err}
	}

	names := make([]string, 0, len(raw))
	for _, msg := range raw {
		name, err := msg.ToString()
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// AliasAdd points a new alias at an index.
func (s *Store) AliasAdd(ctx context.Context, alias, index string) error {
	cmd := s.b().Arbitrary("FT.ALIASADD").Args(alias, index).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpAliasAdd, Err: err}
	}
	return nil
}

// AliasUpdate repoints an alias at an index, creating it if absent.
func (s *Store) AliasUpdate(ctx context.Context, alias, index string) error {
	cmd := s.b().Arbitrary("FT.ALIASUPDATE").Args(alias, index).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpAliasUpdate, Err: err}
	}
	return nil
}

// AliasTarget resolves an alias to the physical index it points at, via the
// index_name attribute of FT.INFO.
func (s *Store) AliasTarget(ctx context.Context, alias string) (string, error) {
	cmd := s.b().Arbitrary("FT.INFO").Args(alias).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "unknown index name") {
			return "", db.ErrAliasNotFound
		}
		return "", &db.Error{Op: db.OpIndexInfo, Err: err}
	}

	// FT.INFO replies with a flat [attr, value, ...] array.
	for i := 0; i+1 < len(raw); i += 2 {
		attr, err := raw[i].ToString()
		if err != nil || attr != "index_name" {
			continue
		}
		name, err := raw[i+1].ToString()
		if err != nil {
			return "", &db.Error{Op: db.OpIndexInfo, Err: err}
		}
		return name, nil
	}
	return "", &db.Error{Op: db.OpIndexInfo, Err: errors.New("index_name missing from FT.INFO reply")}
}

func buildCreateArgs(idx *db.IndexDefinition) ([]string, error) {
	if idx.Name == "" {
		return nil, errors.New("index name is required")
	}
	if len(idx.Fields) == 0 {
		return nil, errors.New("at least one field is required")
	}

	args := []string{idx.Name}

	storage := idx.StorageType
	if storage == "" {
		storage = db.StorageHash
	}
	args = append(args, "ON", string(storage))

	if len(idx.Prefixes) > 0 {
		args = append(args, "PREFIX", strconv.Itoa(len(idx.Prefixes)))
		args = append(args, idx.Prefixes...)
	}

	args = append(args, "SCHEMA")

	for i := range idx.Fields {
		fieldArgs, err := buildFieldArgs(&idx.Fields[i])
		if err != nil {
			return nil, err
		}
		args = append(args, fieldArgs...)
	}

	return args, nil
}

func buildFieldArgs(f *db.IndexField) ([]string, error) {
	if f.Path == "" {
		return nil, errors.New("field path is required")
	}

	args := []string{f.Path}

	if f.Alias != "" {
		args = append(args, "AS", f.Alias)
	}

	switch f.Type {
	case db.IndexFieldTag:
		args = append(args, "TAG")
		if f.TagSeparator != "" {
			args = append(args, "SEPARATOR", f.TagSeparator)
		}
		if f.TagCaseSensitive {
			args = append(args, "CASESENSITIVE")
		}

	case db.IndexFieldText:
		args = append(args, "TEXT")

	case db.IndexFieldNumeric:
		args = append(args, "NUMERIC")

	default:
		return nil, errors.New("unsupported field type")
	}

	if f.Sortable {
		args = append(args, "SORTABLE")
	}

	return args, nil
}
