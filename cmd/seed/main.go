package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-employee-auth/config"
	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/internal/container"
	"github.com/oksasatya/go-employee-auth/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	// no welcome email for seeded accounts
	cfg.RabbitMQURL = ""
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	c, err := container.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer c.Close()

	password := os.Getenv("SEED_USER_PASSWORD")
	if password == "" {
		password = "password123"
	}
	in := application.RegisterInput{Username: "demoUser", Email: "demo@example.com", Password: password}

	id, err := c.AuthService().Register(ctx, in)
	switch {
	case application.IsKind(err, application.KindConflict):
		logger.WithField("email", in.Email).Info("demo user already present, skipping")
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		logger.WithFields(logrus.Fields{"user_id": id, "email": in.Email}).Info("seeded demo user")
	}

	emp := c.EmployeeService()
	existing, err := emp.List(ctx)
	if err != nil {
		log.Fatalf("failed to list employees: %v", err)
	}
	if len(existing) > 0 {
		logger.WithField("count", len(existing)).Info("employees already present, skipping")
		return
	}
	e, err := emp.Create(ctx, application.EmployeeInput{FirstName: "Random", LastName: "Person", Position: "back-end"})
	if err != nil {
		log.Fatalf("failed to seed employee: %v", err)
	}
	logger.WithField("employee_id", e.ID).Info("seeded sample employee")
}
