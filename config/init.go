package config

import (
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App gom các client hạ tầng, được khởi tạo một lần và truyền xuống
// controller thay vì dùng biến package
type App struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func InitApp() (*gin.Engine, *App, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	app, err := initComponents()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, app, m, c, nil
}

func initComponents() (*App, error) {
	if err := LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	db, err := ConnectDB()
	if err != nil {
		return nil, err
	}

	cld, err := ConnectCloudinary()
	if err != nil {
		return nil, err
	}

	rdb, err := ConnectRedis()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("All components initialized successfully")
	return &App{DB: db, Redis: rdb, Cloudinary: cld}, nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}
