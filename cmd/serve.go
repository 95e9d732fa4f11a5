package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lexitag/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run lexitag as an HTTP API server",
	Long: `Starts an HTTP server exposing the classification workflow via a
RESTful API: create a session, edit its keyword dictionary, upload a CSV,
classify a column, then filter and download the results. Session state
lives in memory and expires after the configured TTL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)
		v1 := router.Group("/api/v1")
		apiHandler.RegisterRoutes(v1)

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":   "ok",
				"sessions": appInstance.Sessions.Count(),
			})
		})

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}
		port := servePort
		if port == "" {
			port = appInstance.Config.Server.Port
		}
		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.Printf("Starting lexitag API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			log.Printf("ERROR: Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")
}
