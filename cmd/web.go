package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"parking-cli/internal/client"
	"parking-cli/internal/config"
	"parking-cli/internal/web"
)

// Variables to hold flag values
var (
	webPort       string
	serviceAction string
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	port   string
	api    *client.ParkingClient
	server *http.Server
}

// Start builds the server before the goroutine so Stop never races on it.
func (p *program) Start(s service.Service) error {
	srv := web.NewServer(slog.Default())
	web.BindParking(srv, p.api)

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", p.port),
		Handler: srv.Handler(),
	}
	go p.run(p.server)
	return nil
}

func (p *program) run(server *http.Server) {
	log.Printf("Parking web UI listening on %s (API %s)", server.Addr, p.api.Config.BaseURL)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
			return err
		}
	}
	return nil
}

// serviceConfig describes the installed service. The API settings travel as
// PARKING_* variables so an installed service matches the current flags and env.
func serviceConfig(port string, cfg client.ClientConfig) *service.Config {
	svcConfig := &service.Config{
		Name:        "parking-web",
		DisplayName: "Parking Management Web UI",
		Description: "Serves the parking management forms",
		// Arguments passed to the binary when run as a service
		Arguments: []string{
			"web",
			"--port", port,
		},
		EnvVars: map[string]string{
			"PARKING_BASE_URL": cfg.BaseURL,
			"PARKING_INSECURE": strconv.FormatBool(cfg.Insecure),
			"PARKING_TIMEOUT":  cfg.Timeout.String(),
		},
	}
	if cfgFile != "" {
		svcConfig.Arguments = append(svcConfig.Arguments, "--config", cfgFile)
	}
	return svcConfig
}

// --- COMMAND ---

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the parking forms over HTTP",
	Long: `Starts a long-running HTTP server with one form per API operation.
Can be installed as a system service.`,
	Example: `  parking-cli web --port 8080
  parking-cli web --port 8080 --service install`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.ClientConfig(viper.GetViper())

		svcConfig := serviceConfig(webPort, cfg)

		prg := &program{
			port: webPort,
			api:  client.New(cfg),
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		if serviceAction != "" {
			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Runs interactively, or under the service manager once installed.
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
	webCmd.Flags().StringVar(&webPort, "port", "8080", "Port to listen on")
	webCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
