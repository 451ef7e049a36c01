package dtos

import "github.com/hiqsoft/routecore/modules/routing/domain/entities/shift"

type ShiftCreateDTO struct {
	Name      string  `json:"name" validate:"required"`
	StartTime string  `json:"startTime" validate:"required,len=5"`
	EndTime   string  `json:"endTime" validate:"required,len=5"`
	Duration  *int    `json:"duration"`
	ColorCode *string `json:"colorCode"`
}

func (d *ShiftCreateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ShiftCreateDTO) ToEntity() *shift.Shift {
	return &shift.Shift{
		Name:      d.Name,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Duration:  d.Duration,
		ColorCode: d.ColorCode,
	}
}

type ShiftUpdateDTO struct {
	ID        int64   `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	StartTime string  `json:"startTime" validate:"required,len=5"`
	EndTime   string  `json:"endTime" validate:"required,len=5"`
	Duration  *int    `json:"duration"`
	ColorCode *string `json:"colorCode"`
}

func (d *ShiftUpdateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ShiftUpdateDTO) ToEntity() *shift.Shift {
	return &shift.Shift{
		ID:        d.ID,
		Name:      d.Name,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Duration:  d.Duration,
		ColorCode: d.ColorCode,
	}
}
