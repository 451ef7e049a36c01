package dtos

import "github.com/hiqsoft/routecore/modules/routing/domain/entities/unit"

type UnitCreateDTO struct {
	UnitName    string  `json:"unitName" validate:"required"`
	UnitSymbol  string  `json:"unitSymbol" validate:"required"`
	Description *string `json:"description"`
}

func (d *UnitCreateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *UnitCreateDTO) ToEntity() *unit.Unit {
	return &unit.Unit{
		UnitName:    d.UnitName,
		UnitSymbol:  d.UnitSymbol,
		Description: d.Description,
	}
}

type UnitUpdateDTO struct {
	ID          int64   `json:"id" validate:"required"`
	UnitName    string  `json:"unitName" validate:"required"`
	UnitSymbol  string  `json:"unitSymbol" validate:"required"`
	Description *string `json:"description"`
}

func (d *UnitUpdateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *UnitUpdateDTO) ToEntity() *unit.Unit {
	return &unit.Unit{
		ID:          d.ID,
		UnitName:    d.UnitName,
		UnitSymbol:  d.UnitSymbol,
		Description: d.Description,
	}
}
