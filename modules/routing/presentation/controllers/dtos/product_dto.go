package dtos

import "github.com/hiqsoft/routecore/modules/routing/domain/entities/product"

type ProductCreateDTO struct {
	ProductName string  `json:"productName" validate:"required"`
	Description *string `json:"description"`
	MainRouteID int64   `json:"mainRouteId" validate:"required"`
}

func (d *ProductCreateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ProductCreateDTO) ToEntity() *product.Product {
	return &product.Product{
		ProductName: d.ProductName,
		Description: d.Description,
		MainRouteID: d.MainRouteID,
	}
}

type ProductUpdateDTO struct {
	ID          int64   `json:"id" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Description *string `json:"description"`
	MainRouteID int64   `json:"mainRouteId" validate:"required"`
}

func (d *ProductUpdateDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

func (d *ProductUpdateDTO) ToEntity() *product.Product {
	return &product.Product{
		ID:          d.ID,
		ProductName: d.ProductName,
		Description: d.Description,
		MainRouteID: d.MainRouteID,
	}
}
