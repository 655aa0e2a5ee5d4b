package config

import (
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("không thể nạp file .env: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(
		GetEnv("CLOUDINARY_CLOUD_NAME"),
		GetEnv("CLOUDINARY_API_KEY"),
		GetEnv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi khởi tạo Cloudinary: %v", err)
	}
	return cld, nil
}
