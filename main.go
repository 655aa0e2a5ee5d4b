package main

import (
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"betravel/config"
	"betravel/jobs"
	"betravel/routes"
	"betravel/services"
	"betravel/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func main() {

	router, app, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	tripService := services.NewTripService(services.TripServiceOptions{
		DB:     app.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}, m)
	tripServiceAdapter := services.NewTripServiceAdapter(tripService)
	jobs.SetTripMaintainer(tripServiceAdapter)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	// Client kết nối ws kèm ?userId= để nhận thông báo riêng
	m.HandleConnect(func(s *melody.Session) {
		userID := sessionUserID(s)
		if userID > 0 {
			tripService.RegisterObserver(s, userID)
		}
	})
	m.HandleDisconnect(func(s *melody.Session) {
		userID := sessionUserID(s)
		if userID > 0 {
			tripService.RemoveObserver(s, userID)
		}
	})

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, app, tripService, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	if pingURL := os.Getenv("KEEPALIVE_URL"); pingURL != "" {
		go func() {
			for {
				resp, err := http.Get(pingURL)
				if err != nil {
					log.Printf("Error pinging /ping endpoint: %v", err)
				} else {
					body, _ := ioutil.ReadAll(resp.Body)
					resp.Body.Close()
					log.Printf("Ping response: %s", string(body))
				}
				time.Sleep(5 * time.Minute)
			}
		}()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func sessionUserID(s *melody.Session) uint {
	idStr := s.Request.URL.Query().Get("userId")
	if idStr == "" {
		return 0
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
