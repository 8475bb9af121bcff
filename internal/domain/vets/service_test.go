package vets

import (
	"context"
	"testing"

	"vet-clinic/internal/domain/entity"
)

type testRepo struct {
	items []Vet
	calls int
}

func (r *testRepo) FindAll(ctx context.Context) ([]Vet, error) {
	r.calls++
	out := make([]Vet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) FindPage(ctx context.Context, page, size int) (VetPage, error) {
	r.calls++
	total := len(r.items)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	out := make([]Vet, end-start)
	copy(out, r.items[start:end])
	return VetPage{
		Items:      out,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}, nil
}

func vet(id int64, first, last string, specialties ...string) Vet {
	v := Vet{
		ID:          entity.NewID(id),
		Person:      entity.Person{FirstName: first, LastName: last},
		Specialties: make([]Specialty, 0, len(specialties)),
	}
	for i, name := range specialties {
		v.Specialties = append(v.Specialties, Specialty{
			ID:    entity.NewID(int64(i + 1)),
			Named: entity.Named{Name: name},
		})
	}
	return v
}

func TestService_List_SortsSpecialties(t *testing.T) {
	repo := &testRepo{items: []Vet{vet(1, "Linda", "Douglas", "surgery", "dentistry")}}
	svc := NewService(repo)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	sp := items[0].Specialties
	if sp[0].Name != "dentistry" || sp[1].Name != "surgery" {
		t.Fatalf("specialties = %s, %s (expected name asc)", sp[0].Name, sp[1].Name)
	}
}

func TestService_List_ServesStaleFromCache(t *testing.T) {
	repo := &testRepo{items: []Vet{vet(1, "James", "Carter")}}
	svc := NewService(repo)

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	// mutación directa del store: el cache no se entera hasta reiniciar
	repo.items = append(repo.items, vet(2, "Helen", "Leary", "radiology"))

	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List #2 error: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached list changed: %d -> %d", len(first), len(second))
	}
	if repo.calls != 1 {
		t.Fatalf("repo hit %d times, expected single fetch", repo.calls)
	}
}

func TestService_Page_MetadataAndPerPageKeys(t *testing.T) {
	repo := &testRepo{items: []Vet{
		vet(1, "James", "Carter"),
		vet(2, "Helen", "Leary", "radiology"),
		vet(3, "Linda", "Douglas", "surgery", "dentistry"),
		vet(4, "Rafael", "Ortega", "surgery"),
		vet(5, "Henry", "Stevens", "radiology"),
		vet(6, "Sharon", "Jenkins"),
	}}
	svc := NewService(repo)

	p1, err := svc.Page(context.Background(), 1)
	if err != nil {
		t.Fatalf("Page 1 error: %v", err)
	}
	if len(p1.Items) != 5 || p1.TotalItems != 6 || p1.TotalPages != 2 {
		t.Fatalf("p1 = %d items, total %d, pages %d", len(p1.Items), p1.TotalItems, p1.TotalPages)
	}

	p2, err := svc.Page(context.Background(), 2)
	if err != nil {
		t.Fatalf("Page 2 error: %v", err)
	}
	if len(p2.Items) != 1 {
		t.Fatalf("p2 = %d items", len(p2.Items))
	}

	// cada página tiene su clave; repetirlas no vuelve al repo
	if _, err := svc.Page(context.Background(), 1); err != nil {
		t.Fatalf("Page 1 again error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("repo hit %d times, expected 2 (una por página)", repo.calls)
	}
}

func TestService_Page_ClampsPage(t *testing.T) {
	repo := &testRepo{items: []Vet{vet(1, "James", "Carter")}}
	svc := NewService(repo)

	p, err := svc.Page(context.Background(), 0)
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if p.Page != 1 {
		t.Fatalf("page = %d, expected clamp to 1", p.Page)
	}
}
