package mapper

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"

	"github.com/google/uuid"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) CustomerToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	e := &entity.Customer{
		Id:        c.Id,
		UserId:    c.UserId,
		Address:   c.Address,
		Pincode:   c.Pincode,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	// Derived fields come along only when the association was preloaded.
	if c.User.Id != uuid.Nil {
		e.FullName = c.User.FullName
		e.Email = c.User.Email
	}
	return e
}

func (m *ProfileMapper) CustomerToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	return &model.Customer{
		Id:        c.Id,
		UserId:    c.UserId,
		Address:   c.Address,
		Pincode:   c.Pincode,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ProfileMapper) CustomersToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.CustomerToEntity(c)
	}
	return entities
}

func (m *ProfileMapper) ProfessionalToEntity(p *model.Professional) *entity.Professional {
	if p == nil {
		return nil
	}
	e := &entity.Professional{
		Id:              p.Id,
		UserId:          p.UserId,
		ServiceId:       p.ServiceId,
		Description:     p.Description,
		YearsExperience: p.YearsExperience,
		Verification:    entity.VerificationStatus(p.Verification),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.User.Id != uuid.Nil {
		e.FullName = p.User.FullName
		e.Email = p.User.Email
	}
	if p.Service.Id != uuid.Nil {
		e.ServiceName = p.Service.Name
	}
	return e
}

func (m *ProfileMapper) ProfessionalToModel(p *entity.Professional) *model.Professional {
	if p == nil {
		return nil
	}
	return &model.Professional{
		Id:              p.Id,
		UserId:          p.UserId,
		ServiceId:       p.ServiceId,
		Description:     p.Description,
		YearsExperience: p.YearsExperience,
		Verification:    string(p.Verification),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *ProfileMapper) ProfessionalsToEntities(pros []*model.Professional) []*entity.Professional {
	entities := make([]*entity.Professional, len(pros))
	for i, p := range pros {
		entities[i] = m.ProfessionalToEntity(p)
	}
	return entities
}
