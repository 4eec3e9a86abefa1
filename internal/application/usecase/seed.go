package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// sampleCatalogue productos de muestra para una tienda nueva.
func sampleCatalogue() []dto.CreateProductRequest {
	p := func(name, category string, cost, price int64, stock int) dto.CreateProductRequest {
		return dto.CreateProductRequest{
			Name:     name,
			Category: category,
			Cost:     decimal.NewFromInt(cost),
			Price:    decimal.NewFromInt(price),
			Stock:    stock,
		}
	}
	return []dto.CreateProductRequest{
		p("Pulpen Biru Standard", entity.CategoryStationery, 2000, 3000, 50),
		p("Pensil 2B Faber Castell", entity.CategoryStationery, 3000, 4500, 30),
		p("Penggaris 30cm", entity.CategoryStationery, 5000, 7000, 25),
		p("Kertas A4 70gsm", entity.CategoryStationery, 45000, 55000, 10),
		p("Spidol Hitam", entity.CategoryStationery, 8000, 12000, 20),
		p("Air Mineral 600ml", entity.CategoryConsumable, 2000, 3000, 100),
		p("Teh Botol Sosro", entity.CategoryConsumable, 4000, 6000, 50),
		p("Biskuit Marie", entity.CategoryConsumable, 8000, 12000, 30),
		p("Kopi Sachet", entity.CategoryConsumable, 1500, 2500, 80),
		p("Mie Instan", entity.CategoryConsumable, 3000, 4500, 40),
	}
}
