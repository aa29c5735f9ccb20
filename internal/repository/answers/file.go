package answers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/advent2018/internal/config"
	"github.com/oshokin/advent2018/internal/domain/answer"
)

// Repository defines persistence operations for the answers history.
type Repository interface {
	Load(ctx context.Context) ([]*answer.Record, error)
	Append(ctx context.Context, record *answer.Record) error
	Last(ctx context.Context, day int) (*answer.Record, error)
}

// FileRepository keeps the history as a JSON array in a single file.
type FileRepository struct {
	// path is the filesystem location of the JSON file.
	path string
	// mu serializes access; `all` runs append from several goroutines.
	mu sync.Mutex
}

// ErrNotFound is returned by Last when no record exists for the day.
var ErrNotFound = errors.New("answer not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load returns every stored record, oldest first. A missing file is an
// empty history.
func (r *FileRepository) Load(_ context.Context) ([]*answer.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Append adds record to the end of the history.
func (r *FileRepository) Append(_ context.Context, record *answer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	return r.save(append(records, record))
}

// Last returns the most recent record for day.
func (r *FileRepository) Last(_ context.Context, day int) (*answer.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Day == day {
			return records[i], nil
		}
	}

	return nil, ErrNotFound
}

func (r *FileRepository) load() ([]*answer.Record, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read answers file: %w", err)
	}

	if len(contents) == 0 {
		return nil, nil
	}

	var list structpb.ListValue
	if err = protojson.Unmarshal(contents, &list); err != nil {
		return nil, fmt.Errorf("decode answers file: %w", err)
	}

	records := make([]*answer.Record, 0, len(list.GetValues()))

	for i, v := range list.GetValues() {
		record, err := FromStruct(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("answers file entry %d: %w", i, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func (r *FileRepository) save(records []*answer.Record) error {
	list := &structpb.ListValue{
		Values: make([]*structpb.Value, 0, len(records)),
	}

	for _, record := range records {
		s, err := ToStruct(record)
		if err != nil {
			return err
		}

		list.Values = append(list.Values, structpb.NewStructValue(s))
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
	}

	data, err := marshalOptions.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write answers file: %w", err)
	}

	return nil
}
