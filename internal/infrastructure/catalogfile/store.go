// Package catalogfile persists the product catalog and stock ledger as
// whole-file JSON snapshots. Every read loads the full collection and every
// write saves it back through a temp-file rename, so a torn write can never
// leave a half-serialized snapshot behind. A per-collection mutex serializes
// in-process read-modify-write cycles.
package catalogfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	domainRepo "github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
)

const (
	productsFile = "products.json"
	stockFile    = "stock.json"
)

// collection is a mutex-guarded JSON snapshot of a record slice.
type collection[T any] struct {
	path string
	mu   sync.Mutex
}

func (c *collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", c.path, err)
	}
	return records, nil
}

// save writes the whole collection atomically: marshal, write to a temp
// file in the same directory, then rename over the snapshot.
func (c *collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot %s: %w", c.path, err)
	}
	return nil
}

// mutate runs fn over the loaded collection and saves the result when fn
// reports a change.
func (c *collection[T]) mutate(fn func(records []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	updated, changed, err := fn(records)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.save(updated)
}

func (c *collection[T]) all() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// ProductStore is the file-backed product catalog.
type ProductStore struct {
	col collection[entity.Product]
}

// NewProductStore creates the product store under dir, creating dir if needed
func NewProductStore(dir string) (*ProductStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}
	return &ProductStore{col: collection[entity.Product]{path: filepath.Join(dir, productsFile)}}, nil
}

func (s *ProductStore) List(ctx context.Context) ([]entity.Product, error) {
	return s.col.all()
}

func (s *ProductStore) Get(ctx context.Context, id string) (*entity.Product, error) {
	products, err := s.col.all()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (s *ProductStore) Save(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	return s.col.mutate(func(products []entity.Product) ([]entity.Product, bool, error) {
		product.UpdatedAt = now
		for i := range products {
			if products[i].ID == product.ID {
				product.CreatedAt = products[i].CreatedAt
				products[i] = *product
				return products, true, nil
			}
		}
		if product.CreatedAt.IsZero() {
			product.CreatedAt = now
		}
		return append(products, *product), true, nil
	})
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return s.col.mutate(func(products []entity.Product) ([]entity.Product, bool, error) {
		for i := range products {
			if products[i].ID == id {
				return append(products[:i], products[i+1:]...), true, nil
			}
		}
		return nil, false, apperror.NewNotFoundError("Product")
	})
}

// StockStore is the file-backed stock ledger.
type StockStore struct {
	col collection[entity.StockItem]
}

// NewStockStore creates the stock store under dir, creating dir if needed
func NewStockStore(dir string) (*StockStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}
	return &StockStore{col: collection[entity.StockItem]{path: filepath.Join(dir, stockFile)}}, nil
}

func (s *StockStore) List(ctx context.Context) ([]entity.StockItem, error) {
	return s.col.all()
}

func (s *StockStore) Get(ctx context.Context, id string) (*entity.StockItem, error) {
	items, err := s.col.all()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (s *StockStore) Save(ctx context.Context, item *entity.StockItem) error {
	now := time.Now()
	return s.col.mutate(func(items []entity.StockItem) ([]entity.StockItem, bool, error) {
		item.UpdatedAt = now
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = *item
				return items, true, nil
			}
		}
		return append(items, *item), true, nil
	})
}

func (s *StockStore) Delete(ctx context.Context, id string) error {
	return s.col.mutate(func(items []entity.StockItem) ([]entity.StockItem, bool, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), true, nil
			}
		}
		return nil, false, apperror.NewNotFoundError("Stock item")
	})
}

// Interface checks
var (
	_ domainRepo.ProductRepository = (*ProductStore)(nil)
	_ domainRepo.StockRepository   = (*StockStore)(nil)
)
