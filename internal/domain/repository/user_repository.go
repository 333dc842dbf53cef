package repository

import "github.com/jhoicas/Petfood-admin/internal/domain/entity"

// UserRepository define el puerto de persistencia para los operadores del panel.
// GetByID y GetByEmail devuelven (nil, nil) cuando no existe el usuario.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
