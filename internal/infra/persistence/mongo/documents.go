package mongo

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// userDocument is stored in the users collection. The cart lives inside the document under cartData.
type userDocument struct {
	ID       string         `bson:"_id"`
	Name     string         `bson:"name"`
	Email    string         `bson:"email"`
	Password string         `bson:"password"`
	CartData map[string]int `bson:"cartData"`
	Date     time.Time      `bson:"date"`
}

type productDocument struct {
	ID        int       `bson:"id"`
	Name      string    `bson:"name"`
	Image     string    `bson:"image"`
	Category  string    `bson:"category"`
	NewPrice  float64   `bson:"new_price"`
	OldPrice  float64   `bson:"old_price"`
	Date      time.Time `bson:"date"`
	Available bool      `bson:"available"`
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.Date,
	}, nil
}

func toProductDomain(doc *productDocument) *entity.Product {
	return &entity.Product{
		CatalogID: doc.ID,
		Name:      doc.Name,
		Image:     doc.Image,
		Category:  doc.Category,
		NewPrice:  doc.NewPrice,
		OldPrice:  doc.OldPrice,
		Available: doc.Available,
		CreatedAt: doc.Date,
	}
}

func fromProductDomain(p *entity.Product) *productDocument {
	return &productDocument{
		ID:        p.CatalogID,
		Name:      p.Name,
		Image:     p.Image,
		Category:  p.Category,
		NewPrice:  p.NewPrice,
		OldPrice:  p.OldPrice,
		Date:      p.CreatedAt,
		Available: p.Available,
	}
}
