package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) FindAll(ctx context.Context) ([]vets.Vet, error) {
	items, err := r.queryVets(ctx, `
		SELECT id, first_name, last_name
		FROM vets
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	err = r.attachSpecialties(ctx, items, `
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
	`)
	return items, err
}

func (r *VetsRepo) FindPage(ctx context.Context, page, size int) (vets.VetPage, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vets`).Scan(&total); err != nil {
		return vets.VetPage{}, err
	}

	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}

	items, err := r.queryVets(ctx, `
		SELECT id, first_name, last_name
		FROM vets
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, size, offset)
	if err != nil {
		return vets.VetPage{}, err
	}

	// Mismo LIMIT/OFFSET para no tener que bindear un array de ids.
	err = r.attachSpecialties(ctx, items, `
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		WHERE vs.vet_id IN (SELECT id FROM vets ORDER BY id LIMIT $1 OFFSET $2)
	`, size, offset)
	if err != nil {
		return vets.VetPage{}, err
	}

	return vets.VetPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}, nil
}

func (r *VetsRepo) queryVets(ctx context.Context, query string, args ...any) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		var id int64
		var v vets.Vet
		if err := rows.Scan(&id, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		v.ID = entity.NewID(id)
		v.Specialties = make([]vets.Specialty, 0)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VetsRepo) attachSpecialties(ctx context.Context, items []vets.Vet, query string, args ...any) error {
	if len(items) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byVet := make(map[int64][]vets.Specialty)
	for rows.Next() {
		var vetID, spID int64
		var spName string
		if err := rows.Scan(&vetID, &spID, &spName); err != nil {
			return err
		}
		byVet[vetID] = append(byVet[vetID], vets.Specialty{
			ID:    entity.NewID(spID),
			Named: entity.Named{Name: spName},
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		if sp, ok := byVet[items[i].ID.Int64()]; ok {
			items[i].Specialties = sp
		}
	}
	return nil
}
