package cart

import (
	"sync"

	"gorm.io/gorm"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// Repository persists one cart snapshot per client.
type Repository interface {
	Load(clientID string) ([]models.CartLine, error)
	Save(clientID string, lines []models.CartLine) error
	Delete(clientID string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository stores cart lines as rows keyed by client id. Save
// rewrites the whole cart in one transaction, matching the
// persist-everything-after-every-mutation contract.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Load(clientID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Where("client_id = ?", clientID).Order("added_at").Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *gormRepository) Save(clientID string, lines []models.CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		rows := make([]models.CartLine, len(lines))
		for i, line := range lines {
			line.ID = 0
			line.ClientID = clientID
			rows[i] = line
		}
		return tx.Create(&rows).Error
	})
}

func (r *gormRepository) Delete(clientID string) error {
	return r.db.Where("client_id = ?", clientID).Delete(&models.CartLine{}).Error
}

type memoryRepository struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

// NewMemoryRepository is the fallback when no database is reachable: carts
// survive only for the process lifetime.
func NewMemoryRepository() Repository {
	return &memoryRepository{carts: make(map[string][]models.CartLine)}
}

func (r *memoryRepository) Load(clientID string) ([]models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.CartLine{}, r.carts[clientID]...), nil
}

func (r *memoryRepository) Save(clientID string, lines []models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[clientID] = append([]models.CartLine{}, lines...)
	return nil
}

func (r *memoryRepository) Delete(clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, clientID)
	return nil
}
