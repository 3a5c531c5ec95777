package main

import (
	"atelier/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ClothingModel{},
		model.BrandModel{},
		model.DesignerModel{},
		model.ReviewModel{},
		model.UserModel{},
		model.CartModel{},
		model.OperatorModel{},
		model.ProductModel{},
		model.CategoryModel{},
		model.VariantModel{},
		model.PhotoModel{},
		model.VideoModel{},
		model.OrderModel{},
		model.OrderDetailModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
