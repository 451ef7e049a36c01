package dtos

import "github.com/hiqsoft/routecore/modules/routing/domain/entities/process"

type TechnicalDTO struct {
	UnitID *int64 `json:"unitId"`
	Name   string `json:"name" validate:"required"`
	Value  string `json:"value" validate:"required"`
}

type ProcessCreateDTO struct {
	ProcessName   string         `json:"processName" validate:"required"`
	Description   *string        `json:"description"`
	WorkstationID int64          `json:"workstationId" validate:"required"`
	ProcessTime   float64        `json:"processTime" validate:"gte=0"`
	SetupTime     float64        `json:"setupTime" validate:"gte=0"`
	Technicals    []TechnicalDTO `json:"technicals" validate:"dive"`
}

func (d *ProcessCreateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ProcessCreateDTO) ToEntity() *process.Process {
	p := &process.Process{
		ProcessName:   d.ProcessName,
		Description:   d.Description,
		WorkstationID: d.WorkstationID,
		ProcessTime:   d.ProcessTime,
		SetupTime:     d.SetupTime,
	}
	for _, t := range d.Technicals {
		p.Technicals = append(p.Technicals, process.Technical{
			UnitID: t.UnitID,
			Name:   t.Name,
			Value:  t.Value,
		})
	}
	return p
}

type ProcessUpdateDTO struct {
	ID            int64          `json:"id" validate:"required"`
	ProcessName   string         `json:"processName" validate:"required"`
	Description   *string        `json:"description"`
	WorkstationID int64          `json:"workstationId" validate:"required"`
	ProcessTime   float64        `json:"processTime" validate:"gte=0"`
	SetupTime     float64        `json:"setupTime" validate:"gte=0"`
	Technicals    []TechnicalDTO `json:"technicals" validate:"dive"`
}

func (d *ProcessUpdateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ProcessUpdateDTO) ToEntity() *process.Process {
	p := &process.Process{
		ID:            d.ID,
		ProcessName:   d.ProcessName,
		Description:   d.Description,
		WorkstationID: d.WorkstationID,
		ProcessTime:   d.ProcessTime,
		SetupTime:     d.SetupTime,
	}
	for _, t := range d.Technicals {
		p.Technicals = append(p.Technicals, process.Technical{
			UnitID: t.UnitID,
			Name:   t.Name,
			Value:  t.Value,
		})
	}
	return p
}
