package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nethys"
)

// Ensure BatchStore implements nethys.BatchStore at compile time.
var _ nethys.BatchStore = (*BatchStore)(nil)

// BatchStore implements nethys.BatchStore with atomic update semantics.
// Batches are saved to a temporary directory, then moved atomically on Commit.
type BatchStore struct {
	baseDir string
	name    string
	index   string
	members map[string][]string
}

// NewBatchStore creates a new BatchStore.
// baseDir is the parent directory, name is the output directory name and
// index names the index and aggregations files.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewBatchStore(baseDir, name, index string) *BatchStore {
	return &BatchStore{
		baseDir: baseDir,
		name:    name,
		index:   index,
		members: make(map[string][]string),
	}
}

func (s *BatchStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *BatchStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Address returns the content address of serialized batch bytes.
func Address(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// SaveBatch serializes the batch records as a JSON array, names the file by
// its content address and sets batch.Address.
func (s *BatchStore) SaveBatch(ctx context.Context, batch *nethys.Batch) error {
	if len(batch.Records) == 0 {
		return nethys.Errorf(nethys.EINVALID, "batch has no records")
	}

	data, err := json.Marshal(batch.Records)
	if err != nil {
		return err
	}
	address := Address(data)

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), address+".json"), data, 0644); err != nil {
		return err
	}

	batch.Address = address
	s.members[address] = batch.Members()
	return nil
}

// Commit writes the index and aggregations files and moves the temporary
// directory into place, replacing any previous output.
func (s *BatchStore) Commit(aggs *nethys.Aggregations) error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(s.tempDir(), s.index+"-index.json"), s.members); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(s.tempDir(), s.index+"-aggs.json"), aggs); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards every batch saved since the store was created.
func (s *BatchStore) Abort() error {
	s.members = make(map[string][]string)
	return os.RemoveAll(s.tempDir())
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
