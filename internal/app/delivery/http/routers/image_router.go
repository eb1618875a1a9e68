package routers

import (
	"carepass-service/internal/app/delivery/http/middlewares"
	"carepass-service/internal/app/services/core/images"

	"github.com/go-chi/chi/v5"
)

func attachImageRoutes(router chi.Router, middlewares *middlewares.Middlewares, imageController *images.ImageController) {
	router.Post("/signature", imageController.GenerateUploadSignature)
	router.Post("/save", imageController.SaveImageUrls)
	router.With(middlewares.Authenticate).Post("/images/upload", imageController.UploadImage)
}
