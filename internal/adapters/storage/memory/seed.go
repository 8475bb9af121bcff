package memory

import (
	"vet-clinic/internal/domain/entity"
	"vet-clinic/internal/domain/vets"
)

// SeedVets carga el plantel clásico de la clínica. Es el mismo dataset de
// seed.sql, para que el modo dev arranque con algo que mostrar.
func SeedVets(r *VetRepo) {
	radiology := vets.Specialty{ID: entity.NewID(1), Named: entity.Named{Name: "radiology"}}
	surgery := vets.Specialty{ID: entity.NewID(2), Named: entity.Named{Name: "surgery"}}
	dentistry := vets.Specialty{ID: entity.NewID(3), Named: entity.Named{Name: "dentistry"}}

	r.Add(vets.Vet{ID: entity.NewID(1), Person: entity.Person{FirstName: "James", LastName: "Carter"}})
	r.Add(vets.Vet{ID: entity.NewID(2), Person: entity.Person{FirstName: "Helen", LastName: "Leary"},
		Specialties: []vets.Specialty{radiology}})
	r.Add(vets.Vet{ID: entity.NewID(3), Person: entity.Person{FirstName: "Linda", LastName: "Douglas"},
		Specialties: []vets.Specialty{surgery, dentistry}})
	r.Add(vets.Vet{ID: entity.NewID(4), Person: entity.Person{FirstName: "Rafael", LastName: "Ortega"},
		Specialties: []vets.Specialty{surgery}})
	r.Add(vets.Vet{ID: entity.NewID(5), Person: entity.Person{FirstName: "Henry", LastName: "Stevens"},
		Specialties: []vets.Specialty{radiology}})
	r.Add(vets.Vet{ID: entity.NewID(6), Person: entity.Person{FirstName: "Sharon", LastName: "Jenkins"}})
}
