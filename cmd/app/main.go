package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"intake/cmd"
	intakehttp "intake/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		TrackerBaseURL:        goDotEnvVariable("TRACKER_BASE_URL"),
		SessionIdleTTLMinutes: goDotEnvIntVariable("SESSION_IDLE_TTL_MINUTES"),
		CleanupSchedule:       goDotEnvVariable("CLEANUP_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value := goDotEnvVariable(key)
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %s", key, value)
	}
	return n
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := intakehttp.NewServer(
		app.CreateOpenWizardCommandHandler(),
		app.CreateAdvanceStepCommandHandler(),
		app.CreateRetreatStepCommandHandler(),
		app.CreateResetWizardCommandHandler(),
		app.CreateLookupPlateCommandHandler(),
		app.CreateResolveLookupCommandHandler(),
		app.CreateDecideConflictCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateGetWizardStateQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
