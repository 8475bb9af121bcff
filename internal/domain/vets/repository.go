package vets

import "context"

// Repository es el contrato de lectura de vets. No hay escrituras: el
// seed corre por script y el dato se trata como casi estático.
type Repository interface {
	// FindAll devuelve todos los vets con sus especialidades.
	FindAll(ctx context.Context) ([]Vet, error)

	// FindPage devuelve la página pedida (1-based) con totales.
	FindPage(ctx context.Context, page, size int) (VetPage, error)
}

// VetPage es una página del listado con sus totales.
type VetPage struct {
	Items      []Vet
	Page       int // 1-based
	Size       int
	TotalItems int
	TotalPages int
}
