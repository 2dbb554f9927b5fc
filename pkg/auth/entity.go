package auth

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTypeID is the account type assigned to every self-registered user.
const DefaultTypeID = 2

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	BirthDate    time.Time `json:"dataNascimento"`
	Phone        string    `json:"telefone"`
	CPF          string    `json:"cpf"`
	Sex          string    `json:"sexo"`
	TypeID       int       `json:"idTipo"`
	Active       bool      `json:"ativo"`
	CreatedAt    time.Time `json:"createdAt"`
}
