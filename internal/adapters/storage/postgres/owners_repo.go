package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

// Save persiste el aggregate completo en una sola transacción: owner,
// después cada pet, después las visitas nuevas. Cualquier error hace
// rollback de todo; los ids generados se escriben de vuelta en el grafo
// recién al commitear.
func (r *OwnersRepo) Save(ctx context.Context, o *owners.Owner) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	saved := *o
	if err := saveOwnerRow(ctx, tx, &saved); err != nil {
		return mapError(err)
	}

	saved.Pets = make([]owners.Pet, len(o.Pets))
	copy(saved.Pets, o.Pets)
	for i := range saved.Pets {
		if err := savePetRow(ctx, tx, saved.ID.Int64(), &saved.Pets[i]); err != nil {
			return mapError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return mapError(err)
	}

	*o = saved
	return nil
}

func saveOwnerRow(ctx context.Context, tx *sql.Tx, o *owners.Owner) error {
	if o.ID.IsNew() {
		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&id)
		if err != nil {
			return err
		}
		o.ID = entity.NewID(id)
		return nil
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE owners
		SET first_name = $2, last_name = $3, address = $4, city = $5, telephone = $6
		WHERE id = $1
	`, o.ID.Int64(), o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func savePetRow(ctx context.Context, tx *sql.Tx, ownerID int64, p *owners.Pet) error {
	if p.ID.IsNew() {
		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.Name, p.BirthDate, p.Type.ID.Int64(), ownerID).Scan(&id)
		if err != nil {
			return err
		}
		p.ID = entity.NewID(id)
	} else {
		res, err := tx.ExecContext(ctx, `
			UPDATE pets
			SET name = $3, birth_date = $4, type_id = $5
			WHERE id = $1 AND owner_id = $2
		`, p.ID.Int64(), ownerID, p.Name, p.BirthDate, p.Type.ID.Int64())
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return owners.ErrNotFound
		}
	}

	// Las visitas son append-only: solo se insertan las nuevas.
	visits := make([]owners.Visit, len(p.Visits))
	copy(visits, p.Visits)
	for i := range visits {
		v := &visits[i]
		if !v.ID.IsNew() {
			continue
		}
		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO visits (pet_id, visit_date, description)
			VALUES ($1, $2, $3)
			RETURNING id
		`, p.ID.Int64(), v.Date, v.Description).Scan(&id)
		if err != nil {
			return err
		}
		v.ID = entity.NewID(id)
	}
	p.Visits = visits
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id)

	o, err := scanOwner(row)
	if err != nil {
		return owners.Owner{}, mapError(err)
	}

	if err := r.loadPets(ctx, &o); err != nil {
		return owners.Owner{}, mapError(err)
	}
	return o, nil
}

func (r *OwnersRepo) FindByLastNamePrefix(ctx context.Context, prefix string, page, size int) (owners.OwnerPage, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM owners WHERE last_name LIKE $1
	`, prefix+"%").Scan(&total)
	if err != nil {
		return owners.OwnerPage{}, mapError(err)
	}

	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name LIKE $1
		ORDER BY last_name, id
		LIMIT $2 OFFSET $3
	`, prefix+"%", size, offset)
	if err != nil {
		return owners.OwnerPage{}, mapError(err)
	}
	defer rows.Close()

	items := make([]owners.Owner, 0, size)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return owners.OwnerPage{}, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return owners.OwnerPage{}, mapError(err)
	}

	for i := range items {
		if err := r.loadPets(ctx, &items[i]); err != nil {
			return owners.OwnerPage{}, mapError(err)
		}
	}

	return owners.OwnerPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}, nil
}

func (r *OwnersRepo) PetTypes(ctx context.Context) ([]owners.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name FROM types ORDER BY name
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]owners.PetType, 0)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out = append(out, owners.PetType{ID: entity.NewID(id), Named: entity.Named{Name: name}})
	}
	return out, rows.Err()
}

// loadPets arma el grafo con un solo SELECT: pets con su tipo y, vía LEFT
// JOIN, las visitas. Las filas vienen ordenadas (pet por nombre, visita por
// fecha) así que basta agrupar por cambio de pet id.
func (r *OwnersRepo) loadPets(ctx context.Context, o *owners.Owner) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.birth_date, t.id, t.name,
		       v.id, v.visit_date, v.description
		FROM pets p
		JOIN types t ON t.id = p.type_id
		LEFT JOIN visits v ON v.pet_id = p.id
		WHERE p.owner_id = $1
		ORDER BY p.name, p.id, v.visit_date, v.id
	`, o.ID.Int64())
	if err != nil {
		return err
	}
	defer rows.Close()

	o.Pets = make([]owners.Pet, 0)
	for rows.Next() {
		var (
			petID     int64
			petName   string
			birthDate sql.NullTime
			typeID    int64
			typeName  string
			visitID   sql.NullInt64
			visitDate sql.NullTime
			visitDesc sql.NullString
		)
		if err := rows.Scan(&petID, &petName, &birthDate, &typeID, &typeName,
			&visitID, &visitDate, &visitDesc); err != nil {
			return err
		}

		n := len(o.Pets)
		if n == 0 || o.Pets[n-1].ID.Int64() != petID {
			p := owners.Pet{
				ID:    entity.NewID(petID),
				Named: entity.Named{Name: petName},
				Type:  owners.PetType{ID: entity.NewID(typeID), Named: entity.Named{Name: typeName}},
			}
			if birthDate.Valid {
				p.BirthDate = birthDate.Time
			}
			p.Visits = make([]owners.Visit, 0)
			o.Pets = append(o.Pets, p)
			n++
		}

		if visitID.Valid {
			o.Pets[n-1].Visits = append(o.Pets[n-1].Visits, owners.Visit{
				ID:          entity.NewID(visitID.Int64),
				Date:        visitDate.Time,
				Description: visitDesc.String,
			})
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(row rowScanner) (owners.Owner, error) {
	var o owners.Owner
	var id int64
	if err := row.Scan(&id, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		return owners.Owner{}, err
	}
	o.ID = entity.NewID(id)
	o.Pets = make([]owners.Pet, 0)
	return o, nil
}
