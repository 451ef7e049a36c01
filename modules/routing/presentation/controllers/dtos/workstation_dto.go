package dtos

import (
	"fmt"
	"time"

	"github.com/hiqsoft/routecore/modules/routing/domain/entities/workstation"
)

type ShiftAssignmentDTO struct {
	ShiftID   int64   `json:"shiftId" validate:"required"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func (d *ShiftAssignmentDTO) toEntity() (workstation.ShiftAssignment, error) {
	a := workstation.ShiftAssignment{ShiftID: d.ShiftID}
	var err error
	if a.StartDate, err = parseDate(d.StartDate); err != nil {
		return a, err
	}
	if a.EndDate, err = parseDate(d.EndDate); err != nil {
		return a, err
	}
	return a, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *value)
	}
	return &t, nil
}

type WorkstationCreateDTO struct {
	WorkstationName string               `json:"workstationName" validate:"required"`
	Description     *string              `json:"description"`
	Shifts          []ShiftAssignmentDTO `json:"shifts" validate:"dive"`
}

func (d *WorkstationCreateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *WorkstationCreateDTO) ToEntity() (*workstation.Workstation, error) {
	w := &workstation.Workstation{
		WorkstationName: d.WorkstationName,
		Description:     d.Description,
	}
	for _, s := range d.Shifts {
		a, err := s.toEntity()
		if err != nil {
			return nil, err
		}
		w.Shifts = append(w.Shifts, a)
	}
	return w, nil
}

type WorkstationUpdateDTO struct {
	ID              int64   `json:"id" validate:"required"`
	WorkstationName string  `json:"workstationName" validate:"required"`
	Description     *string `json:"description"`
}

func (d *WorkstationUpdateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *WorkstationUpdateDTO) ToEntity() *workstation.Workstation {
	return &workstation.Workstation{
		ID:              d.ID,
		WorkstationName: d.WorkstationName,
		Description:     d.Description,
	}
}
